package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CleanSweep/internal/domain"
)

// AttendanceRepo — хранилище записей посещения и счётчиков мест.
// Book и Cancel обязаны менять счётчик и запись в одной транзакции.
type AttendanceRepo interface {
	Book(ctx context.Context, rec *domain.AttendanceRecord) error
	Cancel(ctx context.Context, driveID, userID string) (*domain.AttendanceRecord, error)
	CheckIn(ctx context.Context, driveID, qrToken string, now time.Time) (*domain.AttendanceRecord, error)
	GetByDriveAndUser(ctx context.Context, driveID, userID string) (*domain.AttendanceRecord, error)
	ListByDrive(ctx context.Context, driveID string) ([]*domain.AttendanceRecord, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error)
	MarkReminded(ctx context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error)
}
