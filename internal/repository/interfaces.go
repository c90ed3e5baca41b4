package repository

import (
	"context"

	"github.com/alexanderramin/bbtree/internal/domain"
)

// RunRepo persists conversion runs and their rendered snapshots.
type RunRepo interface {
	Create(ctx context.Context, r *domain.Run) error
	GetByID(ctx context.Context, id string) (*domain.Run, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Run, error)
	Finish(ctx context.Context, r *domain.Run) error
	AddSnapshot(ctx context.Context, s *domain.SnapshotRecord) error
	ListSnapshots(ctx context.Context, runID string) ([]*domain.SnapshotRecord, error)
}
