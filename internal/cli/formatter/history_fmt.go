package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bbtree/internal/domain"
)

// FormatHistory renders recent runs as a table, newest first.
func FormatHistory(runs []*domain.Run, now time.Time) string {
	if len(runs) == 0 {
		return Dim("No conversions recorded yet.") + "\n"
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			TruncID(r.ID),
			HumanTimestampFrom(r.StartedAt, now),
			RunStatusPill(r.Status),
			SenseBadge(r.Sense),
			fmt.Sprintf("%d", r.Records),
			fmt.Sprintf("%d", r.Nodes),
			Bound(r.Incumbent),
			r.InputPath,
		})
	}
	headers := []string{"ID", "STARTED", "STATUS", "SENSE", "RECORDS", "NODES", "INCUMBENT", "INPUT"}
	return Header("History") + "\n" + RenderTable(headers, rows, 4, 5, 6)
}

// FormatRun renders one run with its snapshots.
func FormatRun(run *domain.Run, snaps []*domain.SnapshotRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Bold(run.ID), RunStatusPill(run.Status))
	fmt.Fprintf(&b, "%s %s -> %s\n", Dim("input "), run.InputPath, run.OutputBase)
	fmt.Fprintf(&b, "%s %s, %d records, %d nodes, %d feasible, incumbent %s\n",
		Dim("result"), SenseBadge(run.Sense), run.Records, run.Nodes, run.Feasible, Bound(run.Incumbent))
	if run.Follow {
		fmt.Fprintf(&b, "%s followed a live log\n", Dim("mode  "))
	}
	if run.Error != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("error "), StyleRed.Render(run.Error))
	}

	if len(snaps) > 0 {
		rows := make([][]string, 0, len(snaps))
		for _, s := range snaps {
			rows = append(rows, []string{
				fmt.Sprintf("%d", s.Seq),
				fmt.Sprintf("%d", s.Records),
				fmt.Sprintf("%d", s.Nodes),
				Bound(s.Incumbent),
				strings.Join(s.Outputs, ", "),
			})
		}
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"SEQ", "RECORDS", "NODES", "INCUMBENT", "OUTPUTS"}, rows, 0, 1, 2, 3))
	}
	return b.String()
}
