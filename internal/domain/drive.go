package domain

import "time"

type DriveStatus string

const (
	DriveStatusPlanned   DriveStatus = "planned"
	DriveStatusActive    DriveStatus = "active"
	DriveStatusCompleted DriveStatus = "completed"
	DriveStatusCancelled DriveStatus = "cancelled"
)

// RoleRequirement — счётчики по одной роли на уборке.
// booked меняется только условным инкрементом, инвариант 0 <= booked <= capacity.
type RoleRequirement struct {
	Role       string `json:"role"`
	Capacity   int    `json:"capacity"`
	Booked     int    `json:"booked"`
	Waitlisted int    `json:"waitlisted"`
}

type Drive struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	Date        time.Time         `json:"date"`
	Status      DriveStatus       `json:"status"`
	Roles       []RoleRequirement `json:"roles"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Bookable сообщает, принимает ли уборка новые брони на момент now.
func (d *Drive) Bookable(now time.Time) bool {
	return d.Status == DriveStatusPlanned && d.Date.After(now)
}

// HasRole проверяет, что роль объявлена в требованиях уборки.
func (d *Drive) HasRole(role string) bool {
	for _, r := range d.Roles {
		if r.Role == role {
			return true
		}
	}
	return false
}

type DriveDetails struct {
	Drive      Drive              `json:"drive"`
	Attendance []AttendanceRecord `json:"attendance"`
}

type CreateDriveInput struct {
	Title       string
	Description string
	Location    string
	Date        time.Time
	Roles       []RoleRequirement
}
