package dot

import (
	"strings"
	"testing"

	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/alexanderramin/bbtree/internal/tree"
	"github.com/alexanderramin/bbtree/internal/vbc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSnapshot(t *testing.T, lines ...string) tree.Snapshot {
	t.Helper()
	m := tree.NewMachine(domain.Minimize)
	for i, line := range lines {
		rec, err := vbc.ParseLine(i+1, line)
		require.NoError(t, err)
		if rec != nil {
			require.NoError(t, m.Apply(rec))
		}
	}
	return m.Snapshot()
}

func TestWrite_Graph(t *testing.T) {
	snap := buildSnapshot(t,
		"N 0 1 2",
		"N 1 2 3",
		`I 2 \inode:\t2\idepth:\t1\nvar:\tx [0,1] <= 0\nbound:\t40`,
		"U 40",
		"A 2 obj 40",
	)

	var sb strings.Builder
	require.NoError(t, Write(&sb, snap, Options{RankDir: LeftRight}))
	got := sb.String()

	want := "digraph search_tree {\n" +
		"\trankdir=LR;\n" +
		"\tsize=\"11,17\" node [shape = circle];\n" +
		"\t1 [ label = \"1\\n--\\n40.0\", color = \"blue\" ];\n" +
		"\t1 -> 2 [ label = \"x in [0,1]\\nx <= 0.0\" ];\n" +
		"\t2 [ label = \"2\\n40.0\\n40.0\", color = \"green\" ];\n" +
		"\t2 [ style = \"filled\", fillcolor = \"palegreen\" ];\n" +
		"}\n"
	assert.Equal(t, want, got)
}

func TestWrite_DefaultRankDirAndLegend(t *testing.T) {
	snap := buildSnapshot(t, "N 0 1 3")
	got := string(Bytes(snap, Options{Legend: true}))

	assert.Contains(t, got, "rankdir=TB;")
	assert.Contains(t, got, "\ta -> d [ label = \"branching\\ninformation\" ];\n")
	assert.Contains(t, got, "\th [ label = \"inferior\\nnode\", color = \"plum\" ];\n")
	assert.Contains(t, got, "fillcolor = \"palegreen\"")
	assert.True(t, strings.Index(got, "\ta ") < strings.Index(got, "\t1 ["), "legend precedes data")
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"a\"b\\c\nd"`, quote("a\"b\\c\nd"))
}

func TestParseRankDir(t *testing.T) {
	d, err := ParseRankDir("lr")
	require.NoError(t, err)
	assert.Equal(t, LeftRight, d)

	_, err = ParseRankDir("diagonal")
	assert.Error(t, err)
}
