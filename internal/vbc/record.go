// Package vbc reads the VBC tree log written by branch-and-bound solvers
// and turns each line into a typed Record.
package vbc

import (
	"fmt"

	"github.com/alexanderramin/bbtree/internal/domain"
)

// Record is one parsed log line. The concrete types below are the only
// implementations.
type Record interface {
	isRecord()
}

// NewNode creates node ID under Parent. Parent 0 means the node is a root.
type NewNode struct {
	Parent int
	ID     int
	Color  domain.Color
}

// NewColor recolors an existing node.
type NewColor struct {
	ID    int
	Color domain.Color
}

// NodeInfo attaches depth, branching decision and dual bound to a node.
type NodeInfo struct {
	ID        int
	Depth     string
	Branch    string
	DualBound float64
}

// SolutionInfo reports a feasible solution found at a node.
type SolutionInfo struct {
	ID        int
	Info      string
	Objective float64
}

// BoundKind distinguishes upper (U) from lower (L) bound announcements.
type BoundKind string

const (
	BoundUpper BoundKind = "U"
	BoundLower BoundKind = "L"
)

// BoundUpdate announces a new global primal bound.
type BoundUpdate struct {
	Kind  BoundKind
	Value float64
}

func (NewNode) isRecord()      {}
func (NewColor) isRecord()     {}
func (NodeInfo) isRecord()     {}
func (SolutionInfo) isRecord() {}
func (BoundUpdate) isRecord()  {}

func (r NewNode) String() string {
	return fmt.Sprintf("new node %d under %d, color %s", r.ID, r.Parent, r.Color)
}

func (r NewColor) String() string {
	return fmt.Sprintf("node %d color %s", r.ID, r.Color)
}

func (r NodeInfo) String() string {
	return fmt.Sprintf("node %d depth %s dual bound %s", r.ID, r.Depth, domain.Nice(r.DualBound))
}

func (r SolutionInfo) String() string {
	return fmt.Sprintf("node %d solution %s", r.ID, domain.Nice(r.Objective))
}

func (r BoundUpdate) String() string {
	return fmt.Sprintf("%s bound %s", r.Kind, domain.Nice(r.Value))
}
