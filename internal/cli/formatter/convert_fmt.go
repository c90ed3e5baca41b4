package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bbtree/internal/contract"
	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/alexanderramin/bbtree/internal/tree"
)

// ClosedShare is the fraction of nodes that are no longer waiting to be
// solved.
func ClosedShare(snap tree.Snapshot) float64 {
	if len(snap.Nodes) == 0 {
		return 0
	}
	open := snap.CountColor(domain.ColorUnsolved)
	return float64(len(snap.Nodes)-open) / float64(len(snap.Nodes))
}

// FormatConvertSummary renders the outcome of a conversion.
func FormatConvertSummary(resp *contract.ConvertResponse) string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-10s", label)), value)
	}

	row("sense", SenseBadge(resp.Sense))
	row("records", fmt.Sprintf("%d", resp.Records))
	row("nodes", fmt.Sprintf("%d %s", resp.Nodes,
		Dim(fmt.Sprintf("(%d feasible, %d optimal, %d inferior)", resp.Feasible, resp.Optimal, resp.Inferior))))
	row("incumbent", Bold(Bound(resp.Incumbent)))
	if resp.Announced != nil {
		row("announced", Bound(resp.Announced))
	}
	row("closed", RenderProgress(ClosedShare(resp.Final), 20))
	row("snapshots", fmt.Sprintf("%d", resp.Snapshots))
	if resp.DotPath != "" {
		row("dot", resp.DotPath)
	}
	for i, out := range resp.Outputs {
		label := ""
		if i == 0 {
			label = "outputs"
		}
		row(label, out)
	}
	if resp.RunID != "" {
		row("run", TruncID(resp.RunID))
	}
	row("took", resp.Duration.Round(time.Millisecond).String())

	return RenderBox("search tree", strings.TrimRight(b.String(), "\n")) + "\n"
}
