package service

import (
	"context"

	"github.com/alexanderramin/bbtree/internal/contract"
	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/alexanderramin/bbtree/internal/tree"
)

type ConvertService interface {
	Convert(ctx context.Context, req contract.ConvertRequest) (*contract.ConvertResponse, error)
	Build(ctx context.Context, req contract.BuildRequest) (*tree.Snapshot, error)
	// Watch replays the log and keeps applying appended lines until ctx is
	// done or the file goes away, calling onUpdate with every new state.
	Watch(ctx context.Context, req contract.BuildRequest, onUpdate func(tree.Snapshot)) (*tree.Snapshot, error)
}

type HistoryService interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.Run, error)
	Get(ctx context.Context, id string) (*domain.Run, []*domain.SnapshotRecord, error)
}
