package cli

import (
	"fmt"

	"github.com/alexanderramin/bbtree/internal/cli/formatter"
	"github.com/alexanderramin/bbtree/internal/tree"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// snapshotMsg carries a new tree state from the watcher goroutine.
type snapshotMsg struct {
	snap tree.Snapshot
}

// watchDoneMsg is sent once the watch has ended.
type watchDoneMsg struct {
	err error
}

// liveTreeChrome is the number of lines taken by the header, the path line
// and the status bar.
const liveTreeChrome = 4

// liveTreeModel shows the search tree of a log that is still being written,
// redrawn every time a batch of records has been applied.
type liveTreeModel struct {
	path     string
	vp       viewport.Model
	snap     *tree.Snapshot
	updates  int
	err      error
	quitting bool
}

func newLiveTreeModel(path string) liveTreeModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = liveTreeKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return liveTreeModel{path: path, vp: vp}
}

func (m liveTreeModel) Init() tea.Cmd {
	return nil
}

func (m liveTreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-liveTreeChrome, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "home", "g":
			m.vp.GotoTop()
			return m, nil
		case "end", "G":
			m.vp.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case snapshotMsg:
		snap := msg.snap
		m.snap = &snap
		m.updates++
		// SetContent keeps the scroll offset, so the view does not jump
		// while the user is reading a deep subtree.
		m.vp.SetContent(formatter.FormatSearchTree(snap))
		return m, nil

	case watchDoneMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m liveTreeModel) View() string {
	if m.quitting {
		return ""
	}

	header := formatter.Header("live tree")

	body := formatter.Dim("  waiting for records...")
	if m.snap != nil {
		body = m.vp.View()
	}

	status := formatter.Dim("q quit")
	if m.snap != nil {
		status = fmt.Sprintf("%s  %s  %s  %s",
			treeSummary(*m.snap),
			formatter.RenderProgress(formatter.ClosedShare(*m.snap), 20),
			scrollIndicator(m.vp),
			formatter.Dim(fmt.Sprintf("update %d · ↑/↓ pgup/pgdn scroll · q quit", m.updates)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, formatter.Dim(m.path), body, status)
}

// liveTreeKeyMap leaves q and esc free for quitting.
func liveTreeKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "f", " ")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "b")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u", "u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d", "d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

func scrollIndicator(vp viewport.Model) string {
	if vp.TotalLineCount() <= vp.Height {
		return ""
	}
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}
