package domain

import "time"

type UserRole string

const (
	UserRoleVolunteer UserRole = "volunteer"
	UserRoleOrganizer UserRole = "organizer"
	UserRoleAdmin     UserRole = "admin"
)

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Role           UserRole  `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// CanCheckInOthers — право сканировать QR-коды на месте уборки.
func (u *User) CanCheckInOthers() bool {
	return u.Role == UserRoleOrganizer || u.Role == UserRoleAdmin
}

type CreateUserInput struct {
	Username       string
	Role           UserRole
	TelegramChatID *int64
}
