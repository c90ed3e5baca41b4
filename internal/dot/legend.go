package dot

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bbtree/internal/domain"
)

type legendNode struct {
	name   string
	label  string
	color  domain.Color
	filled bool
}

var legendEdges = [][3]string{
	{"a", "d", "branching\ninformation"},
	{"a", "b", ""},
	{"b", "e", ""},
	{"b", "c", ""},
	{"d", "f", ""},
	{"d", "g", ""},
	{"e", "l", ""},
	{"f", "h", ""},
	{"f", "i", ""},
	{"g", "j", ""},
	{"g", "k", ""},
}

var legendNodes = []legendNode{
	{"a", "node name\ndual bound\nprimal bound", domain.ColorSolved, false},
	{"b", "solved\nnode", domain.ColorSolved, false},
	{"c", "in-\nfeasible\ncutoff", domain.ColorCutoff, false},
	{"d", "solved\nnode", domain.ColorSolved, false},
	{"e", "marked\nfor\nrepropa-\ngation", domain.ColorMarkReprop, false},
	{"f", "solved\nnode", domain.ColorSolved, false},
	{"g", "solved\nnode", domain.ColorSolved, false},
	{"h", "inferior\nnode", domain.ColorInferior, false},
	{"i", "newly\ncreated\nnot yet\nsolved", domain.ColorUnsolved, false},
	{"j", "conflict\ncon-\nstraint\nfound", domain.ColorConflict, false},
	{"k", "solved\nnode\nsolution\nfound", domain.ColorOptimal, true},
	{"l", "repro-\npagated\nnode", domain.ColorReprop, false},
}

// legend returns the fixed example subtree documenting the palette. It is
// not derived from any log data.
func legend() string {
	var b strings.Builder
	for _, e := range legendEdges {
		if e[2] == "" {
			fmt.Fprintf(&b, "%s%s -> %s;\n", indent, e[0], e[1])
			continue
		}
		fmt.Fprintf(&b, "%s%s -> %s [ label = %s ];\n", indent, e[0], e[1], quote(e[2]))
	}
	for _, n := range legendNodes {
		fmt.Fprintf(&b, "%s%s [ label = %s, color = %s", indent, n.name, quote(n.label), quote(string(n.color)))
		if n.filled {
			fmt.Fprintf(&b, ", style = \"filled\", fillcolor = %s", quote(string(domain.FillSolution)))
		}
		b.WriteString(" ];\n")
	}
	return b.String()
}
