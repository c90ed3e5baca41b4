package tree

import (
	"fmt"

	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/alexanderramin/bbtree/internal/vbc"
)

// Machine applies VBC records to a Store one at a time. It is not safe for
// concurrent use; hand Snapshots to other goroutines instead.
type Machine struct {
	store     *Store
	records   int
	snapshots int

	announced    float64
	hasAnnounced bool
}

// NewMachine creates a machine over a fresh store.
func NewMachine(sense domain.Sense) *Machine {
	return &Machine{store: NewStore(sense)}
}

// Store exposes the underlying node store.
func (m *Machine) Store() *Store {
	return m.store
}

// Sense returns the problem sense.
func (m *Machine) Sense() domain.Sense {
	return m.store.Sense()
}

// Records returns the number of records applied so far.
func (m *Machine) Records() int {
	return m.records
}

// LastAnnounced returns the most recent primal bound from a U or L record.
func (m *Machine) LastAnnounced() (float64, bool) {
	return m.announced, m.hasAnnounced
}

// Incumbent returns the root's primal bound, or the sentinel before the
// root exists.
func (m *Machine) Incumbent() float64 {
	if root, ok := m.store.Root(); ok {
		return root.PrimalBound
	}
	return m.Sense().Initial()
}

// Apply dispatches one record. A failed record leaves the state as it was
// before the call.
func (m *Machine) Apply(rec vbc.Record) error {
	var err error
	switch r := rec.(type) {
	case vbc.NewNode:
		var parent *int
		if r.Parent != 0 {
			parent = &r.Parent
		}
		_, err = m.store.Create(r.ID, parent, r.Color)
	case vbc.NewColor:
		err = m.store.SetColor(r.ID, r.Color)
	case vbc.NodeInfo:
		err = m.store.AttachInfo(r.ID, r.Depth, r.Branch, r.DualBound)
	case vbc.SolutionInfo:
		err = m.store.RecordSolution(r.ID, r.Info, r.Objective)
	case vbc.BoundUpdate:
		m.announced = r.Value
		m.hasAnnounced = true
	default:
		err = fmt.Errorf("unsupported record type %T", rec)
	}
	if err != nil {
		return err
	}
	m.records++
	return nil
}

// Snapshot copies the current tree and resolves display colors against
// the current incumbent. Each call advances the snapshot counter.
func (m *Machine) Snapshot() Snapshot {
	m.snapshots++
	sense := m.Sense()
	incumbent := m.Incumbent()

	views := make([]NodeView, 0, m.store.Len())
	m.store.Each(func(n *domain.Node) {
		v := NodeView{
			Node:         *n,
			DisplayColor: Resolve(sense, *n, incumbent),
		}
		if n.ParentID != nil {
			p := *n.ParentID
			v.ParentID = &p
		}
		views = append(views, v)
	})

	return Snapshot{
		Seq:       m.snapshots,
		Records:   m.records,
		Sense:     sense,
		Incumbent: incumbent,
		Nodes:     views,
	}
}
