package dto

import (
	"time"

	"github.com/stpnv0/CleanSweep/internal/domain"
)

type RoleRequirementResponse struct {
	Role       string `json:"role"`
	Capacity   int    `json:"capacity"`
	Booked     int    `json:"booked"`
	Waitlisted int    `json:"waitlisted"`
}

type DriveResponse struct {
	ID          string                    `json:"id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Location    string                    `json:"location"`
	Date        string                    `json:"date"`
	Status      string                    `json:"status"`
	Roles       []RoleRequirementResponse `json:"roles"`
	CreatedAt   string                    `json:"created_at"`
}

type DriveDetailsResponse struct {
	Drive      DriveResponse        `json:"drive"`
	Attendance []AttendanceResponse `json:"attendance"`
}

type AttendanceResponse struct {
	ID          string `json:"id"`
	DriveID     string `json:"drive_id"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	QRToken     string `json:"qr_token,omitempty"`
	Status      string `json:"status"`
	CheckedInAt string `json:"checked_in_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToDriveResponse(d *domain.Drive) DriveResponse {
	roles := make([]RoleRequirementResponse, 0, len(d.Roles))
	for _, req := range d.Roles {
		roles = append(roles, RoleRequirementResponse{
			Role:       req.Role,
			Capacity:   req.Capacity,
			Booked:     req.Booked,
			Waitlisted: req.Waitlisted,
		})
	}

	return DriveResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Location:    d.Location,
		Date:        d.Date.Format(time.RFC3339),
		Status:      string(d.Status),
		Roles:       roles,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}

// ToDriveDetailsResponse не включает QR-токены: токен видит только владелец брони.
func ToDriveDetailsResponse(d *domain.DriveDetails) DriveDetailsResponse {
	attendance := make([]AttendanceResponse, 0, len(d.Attendance))
	for _, rec := range d.Attendance {
		resp := ToAttendanceResponse(&rec)
		resp.QRToken = ""
		attendance = append(attendance, resp)
	}

	return DriveDetailsResponse{
		Drive:      ToDriveResponse(&d.Drive),
		Attendance: attendance,
	}
}

func ToAttendanceResponse(rec *domain.AttendanceRecord) AttendanceResponse {
	resp := AttendanceResponse{
		ID:        rec.ID,
		DriveID:   rec.DriveID,
		UserID:    rec.UserID,
		Role:      rec.Role,
		QRToken:   rec.QRToken,
		Status:    string(rec.Status),
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.CheckedInAt != nil {
		resp.CheckedInAt = rec.CheckedInAt.Format(time.RFC3339)
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
