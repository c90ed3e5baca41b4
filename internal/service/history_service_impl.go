package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/alexanderramin/bbtree/internal/repository"
)

type historyService struct {
	runs repository.RunRepo
}

func NewHistoryService(runs repository.RunRepo) HistoryService {
	return &historyService{runs: runs}
}

func (s *historyService) ListRecent(ctx context.Context, limit int) ([]*domain.Run, error) {
	if limit <= 0 {
		return nil, &domain.ConfigError{Msg: fmt.Sprintf("limit must be positive, got %d", limit)}
	}
	return s.runs.ListRecent(ctx, limit)
}

func (s *historyService) Get(ctx context.Context, id string) (*domain.Run, []*domain.SnapshotRecord, error) {
	run, err := s.runs.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	snaps, err := s.runs.ListSnapshots(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("listing snapshots of run %s: %w", id, err)
	}
	return run, snaps, nil
}
