package tree

import (
	"errors"
	"testing"

	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestStore_CreateInitialisesSentinels(t *testing.T) {
	s := NewStore(domain.Minimize)
	n, err := s.Create(1, nil, domain.ColorUnsolved)
	require.NoError(t, err)
	assert.Equal(t, domain.Sentinel, n.DualBound)
	assert.Equal(t, domain.Sentinel, n.PrimalBound)
	assert.True(t, n.IsRoot())

	m := NewStore(domain.Maximize)
	n, err = m.Create(1, nil, domain.ColorUnsolved)
	require.NoError(t, err)
	assert.Equal(t, -domain.Sentinel, n.PrimalBound)
}

func TestStore_CreateDuplicate(t *testing.T) {
	s := NewStore(domain.Minimize)
	_, err := s.Create(1, nil, domain.ColorUnsolved)
	require.NoError(t, err)

	_, err = s.Create(1, nil, domain.ColorSolved)
	var dup *domain.DuplicateNodeError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 1, dup.ID)
	assert.Equal(t, 1, s.Len())
}

func TestStore_CreateMissingParentLeavesStoreUnchanged(t *testing.T) {
	s := NewStore(domain.Minimize)
	_, err := s.Create(1, nil, domain.ColorUnsolved)
	require.NoError(t, err)

	_, err = s.Create(2, intPtr(99), domain.ColorUnsolved)
	var missing *domain.MissingParentError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 99, missing.ParentID)
	assert.Equal(t, 1, s.Len())

	_, err = s.Get(2)
	var unknown *domain.UnknownNodeError
	assert.True(t, errors.As(err, &unknown))
}

func TestStore_OnlyNodeOneIsParentless(t *testing.T) {
	s := NewStore(domain.Minimize)

	_, err := s.Create(2, nil, domain.ColorUnsolved)
	var rootErr *domain.RootError
	require.ErrorAs(t, err, &rootErr)
	assert.Equal(t, 2, rootErr.ID)
	assert.Zero(t, s.Len())

	_, err = s.Create(1, nil, domain.ColorUnsolved)
	require.NoError(t, err)
	_, err = s.Create(2, intPtr(1), domain.ColorUnsolved)
	require.NoError(t, err)

	_, err = s.Create(3, nil, domain.ColorUnsolved)
	require.ErrorAs(t, err, &rootErr)
	assert.Equal(t, 2, s.Len())
}

func TestStore_RootCannotHaveParent(t *testing.T) {
	s := NewStore(domain.Minimize)
	_, err := s.Create(1, intPtr(2), domain.ColorUnsolved)
	var rootErr *domain.RootError
	require.ErrorAs(t, err, &rootErr)
	assert.Equal(t, 2, rootErr.ParentID)
	assert.Contains(t, err.Error(), "root node 1 cannot have parent 2")
	_, ok := s.Root()
	assert.False(t, ok)
}

func TestStore_SetColorKeepsColorOnSolution(t *testing.T) {
	s := NewStore(domain.Minimize)
	_, err := s.Create(1, nil, domain.ColorUnsolved)
	require.NoError(t, err)

	require.NoError(t, s.SetColor(1, domain.ColorSolved))
	require.NoError(t, s.SetColor(1, domain.ColorSolution))
	n, _ := s.Get(1)
	assert.Equal(t, domain.ColorSolved, n.RawColor)
	assert.False(t, n.Feasible)
}

func TestStore_AttachInfoDoesNotPropagate(t *testing.T) {
	s := NewStore(domain.Minimize)
	_, _ = s.Create(1, nil, domain.ColorUnsolved)
	_, _ = s.Create(2, intPtr(1), domain.ColorUnsolved)

	require.NoError(t, s.AttachInfo(2, "1", "x in [0,1]\nx <= 0.0", 12.5))
	child, _ := s.Get(2)
	root, _ := s.Get(1)
	assert.Equal(t, 12.5, child.DualBound)
	assert.Equal(t, "1", child.Depth)
	assert.Equal(t, domain.Sentinel, root.DualBound)
}

func TestStore_UnknownNodeOperations(t *testing.T) {
	s := NewStore(domain.Minimize)
	var unknown *domain.UnknownNodeError
	assert.True(t, errors.As(s.SetColor(4, domain.ColorSolved), &unknown))
	assert.True(t, errors.As(s.AttachInfo(4, "", "", 0), &unknown))
	assert.True(t, errors.As(s.RecordSolution(4, "", 0), &unknown))
}

func TestStore_EachInInsertionOrder(t *testing.T) {
	s := NewStore(domain.Minimize)
	_, _ = s.Create(1, nil, domain.ColorUnsolved)
	_, _ = s.Create(3, intPtr(1), domain.ColorUnsolved)
	_, _ = s.Create(2, intPtr(1), domain.ColorUnsolved)

	var ids []int
	s.Each(func(n *domain.Node) { ids = append(ids, n.ID) })
	assert.Equal(t, []int{1, 3, 2}, ids)
}
