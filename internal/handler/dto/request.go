package dto

type RoleRequirementRequest struct {
	Role     string `json:"role" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

type CreateDriveRequest struct {
	OrganizerID string                   `json:"organizer_id" binding:"required,uuid"`
	Title       string                   `json:"title" binding:"required"`
	Description string                   `json:"description"`
	Location    string                   `json:"location" binding:"required"`
	Date        string                   `json:"date" binding:"required"`
	Roles       []RoleRequirementRequest `json:"roles" binding:"required,min=1,dive"`
}

type BookRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required"`
}

type CancelRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CheckInRequest struct {
	QRToken string `json:"qr_token" binding:"required,uuid"`
	AdminID string `json:"admin_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Role           string `json:"role" binding:"omitempty,oneof=volunteer organizer admin"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
