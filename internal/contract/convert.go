package contract

import (
	"time"

	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/alexanderramin/bbtree/internal/tree"
)

// ConvertRequest describes one conversion of a VBC log.
type ConvertRequest struct {
	InputPath  string
	OutputBase string       // defaults to InputPath
	Sense      domain.Sense // empty means detect from the log
	RankDir    string
	Legend     bool
	Formats    []string
	Frequency  int // render every Nth record; 0 renders only at the end
	Delay      time.Duration
	NoRender   bool
	Follow     bool
}

// NewConvertRequest returns a request with default rendering options.
func NewConvertRequest(input string) ConvertRequest {
	return ConvertRequest{
		InputPath:  input,
		OutputBase: input,
		RankDir:    "TB",
		Formats:    []string{"pdf"},
	}
}

// ConvertResponse summarises a finished conversion.
type ConvertResponse struct {
	RunID     string
	Sense     domain.Sense
	Records   int
	Nodes     int
	Feasible  int
	Inferior  int
	Optimal   int
	Incumbent *float64
	Announced *float64
	Snapshots int
	DotPath   string
	Outputs   []string
	Duration  time.Duration
	Final     tree.Snapshot
}

// BuildRequest asks for the final tree of a log without rendering it.
type BuildRequest struct {
	InputPath string
	Sense     domain.Sense
}
