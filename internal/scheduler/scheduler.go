package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/CleanSweep/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type attendanceReminder interface {
	RemindUpcoming(ctx context.Context) ([]*domain.AttendanceRecord, error)
}

type Scheduler struct {
	bookingService attendanceReminder
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService attendanceReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.bookingService.RemindUpcoming(ctx)
	if err != nil {
		s.logger.Error("failed to send drive reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, rec := range reminded {
		s.logger.Info("drive reminder sent",
			logger.String("attendance_id", rec.ID),
			logger.String("user_id", rec.UserID),
			logger.String("drive_id", rec.DriveID),
		)
	}
}
