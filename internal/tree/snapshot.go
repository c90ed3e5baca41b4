package tree

import "github.com/alexanderramin/bbtree/internal/domain"

// NodeView is a node copied out of the store together with its resolved
// display color.
type NodeView struct {
	domain.Node
	DisplayColor domain.Color
}

// Snapshot is an immutable, fully applied view of the tree.
type Snapshot struct {
	Seq       int
	Records   int
	Sense     domain.Sense
	Incumbent float64
	Nodes     []NodeView
}

// Feasible counts nodes with a recorded solution.
func (s Snapshot) Feasible() int {
	n := 0
	for _, v := range s.Nodes {
		if v.Feasible {
			n++
		}
	}
	return n
}

// CountColor counts nodes whose display color is c.
func (s Snapshot) CountColor(c domain.Color) int {
	n := 0
	for _, v := range s.Nodes {
		if v.DisplayColor == c {
			n++
		}
	}
	return n
}

// Children groups node indexes by parent id; roots are listed under 0.
func (s Snapshot) Children() map[int][]int {
	out := make(map[int][]int)
	for i, v := range s.Nodes {
		parent := 0
		if v.ParentID != nil {
			parent = *v.ParentID
		}
		out[parent] = append(out[parent], i)
	}
	return out
}
