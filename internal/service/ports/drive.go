package ports

import (
	"context"

	"github.com/stpnv0/CleanSweep/internal/domain"
)

type DriveRepo interface {
	Create(ctx context.Context, d *domain.Drive) error
	GetByID(ctx context.Context, id string) (*domain.Drive, error)
	List(ctx context.Context) ([]*domain.Drive, error)
}
