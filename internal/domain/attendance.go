package domain

import "time"

type AttendanceStatus string

const (
	AttendanceStatusBooked     AttendanceStatus = "booked"
	AttendanceStatusWaitlisted AttendanceStatus = "waitlisted"
	AttendanceStatusCheckedIn  AttendanceStatus = "checked_in"
	AttendanceStatusCancelled  AttendanceStatus = "cancelled"
)

var ActiveAttendanceStatuses = []AttendanceStatus{AttendanceStatusBooked, AttendanceStatusWaitlisted}

// AttendanceRecord — одна запись на пару (уборка, волонтёр) независимо от статуса.
// QRToken выдаётся один раз и гасится при чек-ине.
type AttendanceRecord struct {
	ID          string           `json:"id"`
	DriveID     string           `json:"drive_id"`
	UserID      string           `json:"user_id"`
	Role        string           `json:"role"`
	QRToken     string           `json:"qr_token"`
	Status      AttendanceStatus `json:"status"`
	CheckedInAt *time.Time       `json:"checked_in_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CancellationWindow — минимальный срок до начала уборки, в течение которого
// отмена ещё разрешена. Ровно за 24 часа отменить можно, позже — нет.
const CancellationWindow = 24 * time.Hour

func WithinCancellationWindow(driveDate, now time.Time) bool {
	return driveDate.Sub(now) >= CancellationWindow
}

// SameDriveDay — чек-ин разрешён только в календарный день уборки (по UTC).
func SameDriveDay(driveDate, now time.Time) bool {
	dy, dm, dd := driveDate.UTC().Date()
	ny, nm, nd := now.UTC().Date()
	return dy == ny && dm == nm && dd == nd
}
