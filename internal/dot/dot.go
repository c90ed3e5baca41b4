// Package dot writes tree snapshots as Graphviz DOT descriptions.
package dot

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/alexanderramin/bbtree/internal/tree"
)

// RankDir is the Graphviz layout direction.
type RankDir string

const (
	TopBottom RankDir = "TB"
	LeftRight RankDir = "LR"
	BottomTop RankDir = "BT"
	RightLeft RankDir = "RL"
)

// ParseRankDir validates a layout direction.
func ParseRankDir(s string) (RankDir, error) {
	switch d := RankDir(strings.ToUpper(strings.TrimSpace(s))); d {
	case TopBottom, LeftRight, BottomTop, RightLeft:
		return d, nil
	}
	return "", &domain.ConfigError{Msg: fmt.Sprintf("invalid rankdir %q (want TB, LR, BT or RL)", s)}
}

// Options controls the graph header and legend.
type Options struct {
	RankDir RankDir
	Legend  bool
}

const indent = "\t"

// Write emits snap as a directed graph in store insertion order: for each
// node its incoming edge, its node statement, and a fill overlay when a
// solution was found there.
func Write(w io.Writer, snap tree.Snapshot, opts Options) error {
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = TopBottom
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph search_tree {\n%srankdir=%s;\n%ssize=\"11,17\" node [shape = circle];\n", indent, rankdir, indent)
	if opts.Legend {
		bw.WriteString(legend())
	}
	for _, n := range snap.Nodes {
		id := strconv.Itoa(n.ID)
		if n.ParentID != nil {
			fmt.Fprintf(bw, "%s%d -> %s [ label = %s ];\n", indent, *n.ParentID, id, quote(n.Branch))
		}
		label := id + "\n" + domain.SigRoundNice(n.DualBound, domain.DefaultDigits) + "\n" +
			domain.SigRoundNice(n.PrimalBound, domain.DefaultDigits)
		fmt.Fprintf(bw, "%s%s [ label = %s, color = %s ];\n", indent, id, quote(label), quote(string(n.DisplayColor)))
		if n.Feasible {
			fmt.Fprintf(bw, "%s%s [ style = \"filled\", fillcolor = %s ];\n", indent, id, quote(string(domain.FillSolution)))
		}
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// Bytes is Write into a buffer.
func Bytes(snap tree.Snapshot, opts Options) []byte {
	var buf bytes.Buffer
	_ = Write(&buf, snap, opts)
	return buf.Bytes()
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", "", "\n", `\n`)

// quote returns s as a DOT string literal with newlines as \n escapes.
func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
