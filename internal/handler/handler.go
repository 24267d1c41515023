package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CleanSweep/internal/domain"
	"github.com/stpnv0/CleanSweep/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type DriveSvc interface {
	CreateDrive(ctx context.Context, organizerID string, input domain.CreateDriveInput) (*domain.Drive, error)
	GetDetails(ctx context.Context, id string) (*domain.DriveDetails, error)
	List(ctx context.Context) ([]*domain.Drive, error)
}

type BookingSvc interface {
	Book(ctx context.Context, driveID, userID, role string) (*domain.AttendanceRecord, error)
	Cancel(ctx context.Context, driveID, userID string) (*domain.AttendanceRecord, error)
	CheckIn(ctx context.Context, driveID, qrToken, adminID string) (*domain.AttendanceRecord, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	driveService   DriveSvc
	bookingService BookingSvc
	userService    UserSvc
}

func NewHandler(driveService DriveSvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		driveService:   driveService,
		bookingService: bookingService,
		userService:    userService,
	}
}

// Drives

func (h *Handler) CreateDrive(c *ginext.Context) {
	var req dto.CreateDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected RFC3339",
		})
		return
	}

	roles := make([]domain.RoleRequirement, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, domain.RoleRequirement{Role: r.Role, Capacity: r.Capacity})
	}

	input := domain.CreateDriveInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        date,
		Roles:       roles,
	}

	drive, err := h.driveService.CreateDrive(c.Request.Context(), req.OrganizerID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDriveResponse(drive))
}

func (h *Handler) GetDrive(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid drive id"})
		return
	}

	details, err := h.driveService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDriveDetailsResponse(details))
}

func (h *Handler) ListDrives(c *ginext.Context) {
	drives, err := h.driveService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.DriveResponse, 0, len(drives))
	for _, d := range drives {
		resp = append(resp, dto.ToDriveResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) BookSlot(c *ginext.Context) {
	driveID := c.Param("id")
	if _, err := uuid.Parse(driveID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid drive id"})
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rec, err := h.bookingService.Book(c.Request.Context(), driveID, req.UserID, req.Role)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(rec))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	driveID := c.Param("id")
	if _, err := uuid.Parse(driveID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid drive id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rec, err := h.bookingService.Cancel(c.Request.Context(), driveID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponse(rec))
}

func (h *Handler) CheckIn(c *ginext.Context) {
	driveID := c.Param("id")
	if _, err := uuid.Parse(driveID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid drive id"})
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// авторизация сканирующего: только организатор или админ
	admin, err := h.userService.GetByID(c.Request.Context(), req.AdminID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !admin.CanCheckInOthers() {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrNotOrganizer.Error()})
		return
	}

	rec, err := h.bookingService.CheckIn(c.Request.Context(), driveID, req.QRToken, req.AdminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponse(rec))
}

func (h *Handler) GetUserAttendance(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	records, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, dto.ToAttendanceResponse(rec))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Role:           domain.UserRole(req.Role),
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrDriveNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAttendanceNotFound),
		errors.Is(err, domain.ErrTokenNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotVolunteer),
		errors.Is(err, domain.ErrNotOrganizer):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrDriveNotBookable),
		errors.Is(err, domain.ErrUnknownRole),
		errors.Is(err, domain.ErrCancelWindowClosed),
		errors.Is(err, domain.ErrAttendanceCancelled),
		errors.Is(err, domain.ErrAttendanceCheckedIn),
		errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrNotDriveDay):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
