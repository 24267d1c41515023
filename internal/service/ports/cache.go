package ports

import (
	"context"

	"github.com/stpnv0/CleanSweep/internal/domain"
)

// DriveCache — недолговечный кэш деталей уборки; промах не является ошибкой.
type DriveCache interface {
	GetDetails(ctx context.Context, driveID string) (*domain.DriveDetails, bool)
	SetDetails(ctx context.Context, details *domain.DriveDetails)
	Invalidate(ctx context.Context, driveID string)
}
