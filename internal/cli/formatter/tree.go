package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/alexanderramin/bbtree/internal/tree"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Guides []bool // one per ancestor below the root: true draws a pipe
	Level  int
	IsLast bool
	Marker string // styled glyph shown before the title
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders TreeItems as an indented tree using box-drawing
// connectors, with detail badges right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix strings.Builder
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				if i-1 < len(item.Guides) && !item.Guides[i-1] {
					prefix.WriteString(treeBlank)
				} else {
					prefix.WriteString(treePipe)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}

		content := StyleDim.Render(prefix.String()) + item.Marker + item.Title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}
		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := maxContentWidth - lipgloss.Width(li.content)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}
	return b.String()
}

// SearchTreeItems flattens a snapshot depth-first, children in creation
// order.
func SearchTreeItems(snap tree.Snapshot) []TreeItem {
	children := snap.Children()
	items := make([]TreeItem, 0, len(snap.Nodes))

	var walk func(parent int, level int, guides []bool)
	walk = func(parent int, level int, guides []bool) {
		kids := children[parent]
		for i, idx := range kids {
			n := snap.Nodes[idx]
			last := i == len(kids)-1
			items = append(items, nodeItem(n, level, last, guides))

			next := guides
			if level > 0 {
				next = append(append([]bool(nil), guides...), !last)
			}
			walk(n.ID, level+1, next)
		}
	}
	walk(0, 0, nil)
	return items
}

func nodeItem(n tree.NodeView, level int, last bool, guides []bool) TreeItem {
	style := NodeStyle(n.DisplayColor)
	marker := "● "
	if n.Feasible {
		marker = "✔ "
	}

	title := style.Render(fmt.Sprintf("#%d", n.ID))
	if n.Branch != "" {
		title += " " + Dim(strings.ReplaceAll(n.Branch, "\n", "; "))
	}

	return TreeItem{
		Title:  title,
		Guides: guides,
		Level:  level,
		IsLast: last,
		Marker: style.Render(marker),
		Detail: fmt.Sprintf("%s  %s / %s", NodeLabel(n.DisplayColor), domain.Nice(n.DualBound), domain.Nice(n.PrimalBound)),
	}
}

// FormatSearchTree renders the whole snapshot as a terminal tree.
func FormatSearchTree(snap tree.Snapshot) string {
	if len(snap.Nodes) == 0 {
		return Dim("(empty tree)") + "\n"
	}
	return RenderTree(SearchTreeItems(snap))
}
