package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CleanSweep/internal/domain"
	"github.com/stpnv0/CleanSweep/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	attendanceRepo ports.AttendanceRepo
	driveRepo      ports.DriveRepo
	userRepo       ports.UserRepo
	notifier       ports.AttendanceNotifier
	cache          ports.DriveCache
	reminderLead   time.Duration
	logger         logger.Logger
}

func NewBookingService(
	attendanceRepo ports.AttendanceRepo,
	driveRepo ports.DriveRepo,
	userRepo ports.UserRepo,
	notifier ports.AttendanceNotifier,
	cache ports.DriveCache,
	reminderLead time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		attendanceRepo: attendanceRepo,
		driveRepo:      driveRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		cache:          cache,
		reminderLead:   reminderLead,
		logger:         logger,
	}
}

// Book распределяет место: booked пока есть вместимость, иначе waitlisted.
// Предусловия проверяются здесь, сама борьба за место решается атомарным
// условным инкрементом в репозитории.
func (s *BookingService) Book(ctx context.Context, driveID, userID, role string) (*domain.AttendanceRecord, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if user.Role != domain.UserRoleVolunteer {
		return nil, domain.ErrNotVolunteer
	}

	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, fmt.Errorf("check drive: %w", err)
	}
	if !drive.Bookable(time.Now().UTC()) {
		return nil, domain.ErrDriveNotBookable
	}
	if !drive.HasRole(role) {
		return nil, domain.ErrUnknownRole
	}

	rec := &domain.AttendanceRecord{
		ID:      uuid.New().String(),
		DriveID: driveID,
		UserID:  userID,
		Role:    role,
		QRToken: uuid.New().String(),
	}
	if err = s.attendanceRepo.Book(ctx, rec); err != nil {
		return nil, fmt.Errorf("book slot: %w", err)
	}

	s.cache.Invalidate(ctx, driveID)

	s.logger.Info("slot booked",
		logger.String("attendance_id", rec.ID),
		logger.String("drive_id", driveID),
		logger.String("user_id", userID),
		logger.String("role", role),
		logger.String("status", string(rec.Status)),
	)

	if rec.Status == domain.AttendanceStatusBooked {
		go s.notifier.NotifySlotBooked(context.WithoutCancel(ctx), user, drive, rec)
	} else {
		go s.notifier.NotifyWaitlisted(context.WithoutCancel(ctx), user, drive, rec)
	}

	return rec, nil
}

// Cancel снимает бронь не позднее чем за 24 часа до начала уборки.
// Освободившееся место никому не передаётся автоматически: его займёт
// следующий, кто успеет забронировать.
func (s *BookingService) Cancel(ctx context.Context, driveID, userID string) (*domain.AttendanceRecord, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, fmt.Errorf("check drive: %w", err)
	}

	rec, err := s.attendanceRepo.GetByDriveAndUser(ctx, driveID, userID)
	if err != nil {
		return nil, fmt.Errorf("check attendance: %w", err)
	}
	switch rec.Status {
	case domain.AttendanceStatusCancelled:
		return nil, domain.ErrAttendanceCancelled
	case domain.AttendanceStatusCheckedIn:
		return nil, domain.ErrAttendanceCheckedIn
	}

	if !domain.WithinCancellationWindow(drive.Date, time.Now().UTC()) {
		return nil, domain.ErrCancelWindowClosed
	}

	// репозиторий перепроверит статус под блокировкой строки
	cancelled, err := s.attendanceRepo.Cancel(ctx, driveID, userID)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.cache.Invalidate(ctx, driveID)

	s.logger.Info("booking cancelled",
		logger.String("attendance_id", cancelled.ID),
		logger.String("drive_id", driveID),
		logger.String("user_id", userID),
	)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for cancel notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return cancelled, nil
	}
	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), user, drive)

	return cancelled, nil
}

// CheckIn гасит QR-токен в день уборки. Права сканирующего проверяет
// вызывающая сторона до этого вызова, adminID нужен только для журнала.
func (s *BookingService) CheckIn(ctx context.Context, driveID, qrToken, adminID string) (*domain.AttendanceRecord, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, fmt.Errorf("check drive: %w", err)
	}

	now := time.Now().UTC()
	if !domain.SameDriveDay(drive.Date, now) {
		return nil, domain.ErrNotDriveDay
	}

	rec, err := s.attendanceRepo.CheckIn(ctx, driveID, qrToken, now)
	if err != nil {
		return nil, fmt.Errorf("check in: %w", err)
	}

	s.cache.Invalidate(ctx, driveID)

	s.logger.Info("volunteer checked in",
		logger.String("attendance_id", rec.ID),
		logger.String("drive_id", driveID),
		logger.String("user_id", rec.UserID),
		logger.String("checked_by", adminID),
	)

	return rec, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error) {
	return s.attendanceRepo.ListByUser(ctx, userID)
}

// RemindUpcoming рассылает напоминания участникам уборок, начинающихся
// в ближайшее окно. Повторная отправка исключена флагом reminder_sent.
func (s *BookingService) RemindUpcoming(ctx context.Context) ([]*domain.AttendanceRecord, error) {
	now := time.Now().UTC()
	reminded, err := s.attendanceRepo.MarkReminded(ctx, now, now.Add(s.reminderLead))
	if err != nil {
		return nil, fmt.Errorf("mark reminded: %w", err)
	}

	if len(reminded) > 0 {
		s.logger.Info("drive reminders queued",
			logger.Int("count", len(reminded)),
		)

		go s.notifyReminded(context.WithoutCancel(ctx), reminded)
	}

	return reminded, nil
}

func (s *BookingService) notifyReminded(ctx context.Context, recs []*domain.AttendanceRecord) {
	for _, rec := range recs {
		user, err := s.userRepo.GetByID(ctx, rec.UserID)
		if err != nil {
			s.logger.Error("failed to get user for reminder",
				logger.String("user_id", rec.UserID),
			)
			continue
		}

		drive, err := s.driveRepo.GetByID(ctx, rec.DriveID)
		if err != nil {
			s.logger.Error("failed to get drive for reminder",
				logger.String("drive_id", rec.DriveID),
			)
			continue
		}

		s.notifier.NotifyDriveReminder(ctx, user, drive)
	}
}
