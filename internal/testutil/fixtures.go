package testutil

import (
	"time"

	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/google/uuid"
)

// RunOption customises a run built by NewTestRun.
type RunOption func(*domain.Run)

func WithSense(s domain.Sense) RunOption {
	return func(r *domain.Run) {
		r.Sense = s
	}
}

func WithStartedAt(t time.Time) RunOption {
	return func(r *domain.Run) {
		r.StartedAt = t
	}
}

func WithRunStatus(s domain.RunStatus) RunOption {
	return func(r *domain.Run) {
		r.Status = s
	}
}

// NewTestRun returns a running, minimizing run for the given input path.
func NewTestRun(input string, opts ...RunOption) *domain.Run {
	r := &domain.Run{
		ID:         uuid.New().String(),
		InputPath:  input,
		OutputBase: input,
		Sense:      domain.Minimize,
		Status:     domain.RunRunning,
		StartedAt:  time.Now().UTC().Truncate(time.Second),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// SampleLog is a small minimization log covering every record type.
const SampleLog = `#TYPE: COMPLETE TREE
#TIME: SET
#BOUNDS: SET
0:00:00.00 N 0 1 3
0:00:00.01 I 1 \inode:\t1\idepth:\t0\nvar:\t-\nbound:\t30
0:00:00.01 P 1 2
0:00:00.02 N 1 2 3
0:00:00.02 N 1 3 3
0:00:00.03 I 2 \inode:\t2\idepth:\t1\nvar:\tx [0,1] <= 0.000000\nbound:\t40
0:00:00.03 P 2 2
0:00:00.04 U 40
0:00:00.04 A 2 \nfound by <relaxation>\nobjective value: 40
0:00:00.04 P 2 14
0:00:00.05 I 3 \inode:\t3\idepth:\t1\nvar:\tx [0,1] >= 1.000000\nbound:\t45
0:00:00.05 P 3 4
`
