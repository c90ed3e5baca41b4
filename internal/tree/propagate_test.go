package tree

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChain(t *testing.T, sense domain.Sense, depth int) *Store {
	t.Helper()
	s := NewStore(sense)
	_, err := s.Create(1, nil, domain.ColorUnsolved)
	require.NoError(t, err)
	for id := 2; id <= depth; id++ {
		_, err := s.Create(id, intPtr(id-1), domain.ColorUnsolved)
		require.NoError(t, err)
	}
	return s
}

func primal(t *testing.T, s *Store, id int) float64 {
	t.Helper()
	n, err := s.Get(id)
	require.NoError(t, err)
	return n.PrimalBound
}

// A better child improves the root; a worse sibling stops at its parent
// without changing it.
func TestPropagate_BetterChildThenWorseSibling(t *testing.T) {
	s := NewStore(domain.Minimize)
	_, _ = s.Create(1, nil, domain.ColorSolved)
	_, _ = s.Create(2, intPtr(1), domain.ColorSolved)
	_, _ = s.Create(3, intPtr(1), domain.ColorSolved)

	require.NoError(t, s.RecordSolution(1, "", 50))
	require.NoError(t, s.RecordSolution(2, "", 40))
	assert.Equal(t, 40.0, primal(t, s, 1))

	n3, _ := s.Get(3)
	n3.PrimalBound = 60
	n3.Feasible = true
	steps := Propagate(s, n3)
	assert.Equal(t, 1, steps)
	assert.Equal(t, 40.0, primal(t, s, 1))
	assert.Equal(t, 60.0, primal(t, s, 3))
}

func TestPropagate_Maximize(t *testing.T) {
	s := newChain(t, domain.Maximize, 4)
	require.NoError(t, s.RecordSolution(4, "", 10))
	assert.Equal(t, 10.0, primal(t, s, 1))

	require.NoError(t, s.RecordSolution(3, "", 5))
	assert.Equal(t, 10.0, primal(t, s, 1), "worse solution must not lower the root")
	assert.Equal(t, 10.0, primal(t, s, 3), "node keeps its better subtree bound")
}

func TestPropagate_StopsAtBetterAncestor(t *testing.T) {
	s := newChain(t, domain.Minimize, 5)
	require.NoError(t, s.RecordSolution(3, "", 20))
	require.NoError(t, s.RecordSolution(5, "", 30))

	assert.Equal(t, 30.0, primal(t, s, 5))
	assert.Equal(t, 30.0, primal(t, s, 4))
	assert.Equal(t, 20.0, primal(t, s, 3))
	assert.Equal(t, 20.0, primal(t, s, 1))
}

func TestPropagate_Idempotent(t *testing.T) {
	s := newChain(t, domain.Minimize, 6)
	require.NoError(t, s.RecordSolution(6, "", 12))

	before := make(map[int]float64)
	s.Each(func(n *domain.Node) { before[n.ID] = n.PrimalBound })

	require.NoError(t, s.RecordSolution(6, "", 12))
	s.Each(func(n *domain.Node) {
		assert.Equal(t, before[n.ID], n.PrimalBound, "node %d", n.ID)
	})
}

// TestPropagate_Invariants_RootHoldsBest property-tests random trees: the
// root always ends with the best recorded objective and no ancestor bound
// ever gets worse.
func TestPropagate_Invariants_RootHoldsBest(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		sense := domain.Minimize
		if rng.Intn(2) == 1 {
			sense = domain.Maximize
		}
		s := NewStore(sense)
		_, err := s.Create(1, nil, domain.ColorUnsolved)
		require.NoError(t, err)

		size := rng.Intn(40) + 2
		for id := 2; id <= size; id++ {
			_, err := s.Create(id, intPtr(rng.Intn(id-1)+1), domain.ColorUnsolved)
			require.NoError(t, err)
		}

		best := sense.Initial()
		for k := 0; k < 30; k++ {
			id := rng.Intn(size) + 1
			obj := float64(rng.Intn(1000) - 500)

			prev := make(map[int]float64)
			s.Each(func(n *domain.Node) { prev[n.ID] = n.PrimalBound })

			require.NoError(t, s.RecordSolution(id, "", obj))
			best = sense.Best(best, obj)

			assert.Equal(t, best, primal(t, s, 1), "trial %d: root must hold the incumbent", trial)
			s.Each(func(n *domain.Node) {
				assert.True(t, sense.AtLeastAsGood(n.PrimalBound, prev[n.ID]),
					"trial %d: node %d bound got worse (%v -> %v)", trial, n.ID, prev[n.ID], n.PrimalBound)
			})
		}
	}
}
