package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/alexanderramin/bbtree/internal/repository"
	"github.com/alexanderramin/bbtree/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_ListRecentNewestFirst(t *testing.T) {
	runs, _ := setupHistory(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	older := testutil.NewTestRun("a.vbc", testutil.WithStartedAt(base))
	newer := testutil.NewTestRun("b.vbc", testutil.WithStartedAt(base.Add(time.Hour)), testutil.WithSense(domain.Maximize))
	require.NoError(t, runs.Create(ctx, older))
	require.NoError(t, runs.Create(ctx, newer))

	svc := NewHistoryService(runs)
	got, err := svc.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, domain.Maximize, got[0].Sense)
	assert.Equal(t, older.ID, got[1].ID)

	got, err = svc.ListRecent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestHistory_ListRecentRejectsBadLimit(t *testing.T) {
	runs, _ := setupHistory(t)
	_, err := NewHistoryService(runs).ListRecent(context.Background(), 0)
	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestHistory_GetWithSnapshots(t *testing.T) {
	runs, _ := setupHistory(t)
	ctx := context.Background()

	run := testutil.NewTestRun("a.vbc")
	require.NoError(t, runs.Create(ctx, run))
	require.NoError(t, runs.AddSnapshot(ctx, &domain.SnapshotRecord{
		RunID:     run.ID,
		Seq:       1,
		Records:   5,
		Nodes:     3,
		DotPath:   "a.vbc.dot",
		Outputs:   []string{"a.vbc_00005.pdf"},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}))

	got, snaps, err := NewHistoryService(runs).Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	require.Len(t, snaps, 1)
	assert.Equal(t, []string{"a.vbc_00005.pdf"}, snaps[0].Outputs)
}

func TestHistory_GetUnknownRun(t *testing.T) {
	runs, _ := setupHistory(t)
	_, _, err := NewHistoryService(runs).Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
