package domain

import "time"

type RunStatus string

const (
	RunRunning RunStatus = "running"
	RunDone    RunStatus = "done"
	RunFailed  RunStatus = "failed"
)

// Run is one conversion of a VBC log, as kept in the history store.
type Run struct {
	ID         string
	InputPath  string
	OutputBase string
	Sense      Sense
	Follow     bool
	Status     RunStatus
	Records    int
	Nodes      int
	Feasible   int
	Incumbent  *float64 // nil while no solution is known
	Error      string
	StartedAt  time.Time
	FinishedAt *time.Time
}

// SnapshotRecord describes one rendered snapshot of a run.
type SnapshotRecord struct {
	RunID     string
	Seq       int
	Records   int
	Nodes     int
	Incumbent *float64
	DotPath   string
	Outputs   []string
	CreatedAt time.Time
}

// BoundPtr returns nil for sentinel bounds and a pointer to v otherwise.
func BoundPtr(v float64) *float64 {
	if !Bounded(v) {
		return nil
	}
	return &v
}
