package ports

import (
	"context"

	"github.com/stpnv0/CleanSweep/internal/domain"
)

type AttendanceNotifier interface {
	NotifySlotBooked(ctx context.Context, user *domain.User, drive *domain.Drive, rec *domain.AttendanceRecord)
	NotifyWaitlisted(ctx context.Context, user *domain.User, drive *domain.Drive, rec *domain.AttendanceRecord)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, drive *domain.Drive)
	NotifyDriveReminder(ctx context.Context, user *domain.User, drive *domain.Drive)
}
