package domain

import "fmt"

// Color is a Graphviz color name.
type Color string

const (
	ColorUnsolved   Color = "gold3"
	ColorSolved     Color = "blue"
	ColorCutoff     Color = "red"
	ColorConflict   Color = "sandybrown"
	ColorMarkReprop Color = "gray"
	ColorReprop     Color = "steelblue"
	ColorNone       Color = "black"
	ColorOptimal    Color = "green"
	ColorInferior   Color = "plum"

	// ColorSolution is the reserved "solved, solution found" code. It is
	// tracked through Node.Feasible and never stored as a raw color.
	ColorSolution Color = "14"

	// FillSolution is the fill overlay for nodes with a recorded solution.
	FillSolution Color = "palegreen"
)

// colorCodes maps solver color codes to named colors.
var colorCodes = map[string]Color{
	"3":  ColorUnsolved,
	"2":  ColorSolved,
	"4":  ColorCutoff,
	"15": ColorConflict,
	"11": ColorMarkReprop,
	"12": ColorReprop,
	"14": ColorSolution,
	"-1": ColorNone,
	"5":  ColorOptimal,
	"99": ColorInferior,
}

// ColorForCode resolves a solver color code.
func ColorForCode(code string) (Color, error) {
	c, ok := colorCodes[code]
	if !ok {
		return "", fmt.Errorf("unknown color code %q", code)
	}
	return c, nil
}

// Node is a single subproblem in the branch-and-bound tree.
type Node struct {
	ID          int
	ParentID    *int
	RawColor    Color
	DualBound   float64
	PrimalBound float64
	Feasible    bool
	Depth       string
	Branch      string
	Info        string
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.ParentID == nil
}
