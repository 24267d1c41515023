package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CleanSweep/internal/domain"
	"github.com/stpnv0/CleanSweep/internal/service/ports"
)

type DriveService struct {
	repo           ports.DriveRepo
	attendanceRepo ports.AttendanceRepo
	userRepo       ports.UserRepo
	cache          ports.DriveCache
}

func NewDriveService(
	repo ports.DriveRepo,
	attendanceRepo ports.AttendanceRepo,
	userRepo ports.UserRepo,
	cache ports.DriveCache,
) *DriveService {
	return &DriveService{
		repo:           repo,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		cache:          cache,
	}
}

func (s *DriveService) CreateDrive(ctx context.Context, organizerID string, input domain.CreateDriveInput) (*domain.Drive, error) {
	organizer, err := s.userRepo.GetByID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("check organizer: %w", err)
	}
	if !organizer.CanCheckInOthers() {
		return nil, domain.ErrNotOrganizer
	}

	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Date.Before(time.Now()) {
		return nil, fmt.Errorf("%w: date must be in the future", domain.ErrValidation)
	}
	if len(input.Roles) == 0 {
		return nil, fmt.Errorf("%w: at least one role requirement is needed", domain.ErrValidation)
	}
	seen := make(map[string]struct{}, len(input.Roles))
	for _, req := range input.Roles {
		if req.Role == "" {
			return nil, fmt.Errorf("%w: role name is required", domain.ErrValidation)
		}
		if req.Capacity <= 0 {
			return nil, fmt.Errorf("%w: capacity must be positive for role %q", domain.ErrValidation, req.Role)
		}
		if _, ok := seen[req.Role]; ok {
			return nil, fmt.Errorf("%w: duplicate role %q", domain.ErrValidation, req.Role)
		}
		seen[req.Role] = struct{}{}
	}

	drive := &domain.Drive{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Date:        input.Date,
		Status:      domain.DriveStatusPlanned,
		Roles:       input.Roles,
	}

	if err := s.repo.Create(ctx, drive); err != nil {
		return nil, fmt.Errorf("create drive: %w", err)
	}

	return drive, nil
}

func (s *DriveService) GetByID(ctx context.Context, id string) (*domain.Drive, error) {
	return s.repo.GetByID(ctx, id)
}

// GetDetails отдаёт уборку со счётчиками и активными записями,
// сквозь короткоживущий кэш.
func (s *DriveService) GetDetails(ctx context.Context, id string) (*domain.DriveDetails, error) {
	if details, ok := s.cache.GetDetails(ctx, id); ok {
		return details, nil
	}

	drive, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByDrive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	details := &domain.DriveDetails{Drive: *drive}
	details.Attendance = make([]domain.AttendanceRecord, len(records))
	for i, rec := range records {
		details.Attendance[i] = *rec
	}

	s.cache.SetDetails(ctx, details)

	return details, nil
}

func (s *DriveService) List(ctx context.Context) ([]*domain.Drive, error) {
	return s.repo.List(ctx)
}
