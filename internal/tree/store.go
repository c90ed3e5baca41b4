// Package tree holds the incremental branch-and-bound tree state built from
// VBC records: node storage, primal bound propagation and display colors.
package tree

import "github.com/alexanderramin/bbtree/internal/domain"

// RootID is the id the solver gives the root node.
const RootID = 1

// Store is an insertion-ordered registry of nodes. Nodes are never removed.
type Store struct {
	sense domain.Sense
	nodes map[int]*domain.Node
	order []int
}

// NewStore creates an empty store whose fresh nodes start at the sense's
// sentinel bounds.
func NewStore(sense domain.Sense) *Store {
	return &Store{
		sense: sense,
		nodes: make(map[int]*domain.Node),
	}
}

// Sense returns the optimization direction the store was built for.
func (s *Store) Sense() domain.Sense {
	return s.sense
}

// Create inserts a node. Only RootID is created with a nil parent. On error
// the store is left untouched.
func (s *Store) Create(id int, parent *int, color domain.Color) (*domain.Node, error) {
	if _, ok := s.nodes[id]; ok {
		return nil, &domain.DuplicateNodeError{ID: id}
	}
	switch {
	case parent == nil && id != RootID:
		return nil, &domain.RootError{ID: id}
	case parent != nil && id == RootID:
		return nil, &domain.RootError{ID: id, ParentID: *parent}
	}
	if parent != nil {
		if _, ok := s.nodes[*parent]; !ok {
			return nil, &domain.MissingParentError{ID: id, ParentID: *parent}
		}
		p := *parent
		parent = &p
	}
	n := &domain.Node{
		ID:          id,
		ParentID:    parent,
		RawColor:    color,
		DualBound:   s.sense.Initial(),
		PrimalBound: s.sense.Initial(),
	}
	s.nodes[id] = n
	s.order = append(s.order, id)
	return n, nil
}

// Get returns the node with the given id.
func (s *Store) Get(id int) (*domain.Node, error) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, &domain.UnknownNodeError{ID: id}
	}
	return n, nil
}

// Root returns node 1 if it has been created.
func (s *Store) Root() (*domain.Node, bool) {
	n, ok := s.nodes[RootID]
	return n, ok
}

// Parent returns the parent of n, or nil for roots.
func (s *Store) Parent(n *domain.Node) *domain.Node {
	if n.ParentID == nil {
		return nil
	}
	return s.nodes[*n.ParentID]
}

// SetColor overwrites the raw color, except for the reserved solution
// color which is tracked through the feasible flag instead.
func (s *Store) SetColor(id int, color domain.Color) error {
	n, err := s.Get(id)
	if err != nil {
		return err
	}
	if color != domain.ColorSolution {
		n.RawColor = color
	}
	return nil
}

// AttachInfo stores descriptive fields and the node's own dual bound.
// Dual bounds are local to a node and are not propagated.
func (s *Store) AttachInfo(id int, depth, branch string, dual float64) error {
	n, err := s.Get(id)
	if err != nil {
		return err
	}
	n.Depth = depth
	n.Branch = branch
	n.DualBound = dual
	return nil
}

// RecordSolution marks the node feasible, keeps the better of its current
// primal bound and objective, and pushes the bound up the ancestor chain.
func (s *Store) RecordSolution(id int, info string, objective float64) error {
	n, err := s.Get(id)
	if err != nil {
		return err
	}
	n.Feasible = true
	n.Info = info
	n.PrimalBound = s.sense.Best(n.PrimalBound, objective)
	Propagate(s, n)
	return nil
}

// Len returns the number of nodes.
func (s *Store) Len() int {
	return len(s.order)
}

// Each visits nodes in insertion order.
func (s *Store) Each(fn func(n *domain.Node)) {
	for _, id := range s.order {
		fn(s.nodes[id])
	}
}
