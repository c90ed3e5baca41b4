package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanTimestampFrom returns a relative timestamp such as "5m ago", falling
// back to an absolute date after a day.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006 15:04")
	}
}

// RunStatusPill returns a colored indicator for a run status.
func RunStatusPill(status domain.RunStatus) string {
	switch status {
	case domain.RunDone:
		return StyleGreen.Render("✔ done")
	case domain.RunRunning:
		return StyleYellow.Render("● running")
	case domain.RunFailed:
		return StyleRed.Render("✖ failed")
	default:
		return StyleDim.Render(string(status))
	}
}

// SenseBadge shows the optimization direction.
func SenseBadge(s domain.Sense) string {
	switch s {
	case domain.Minimize:
		return StyleBlue.Render("min")
	case domain.Maximize:
		return StylePurple.Render("max")
	default:
		return StyleDim.Render("--")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Bound renders an optional bound, "--" when absent.
func Bound(v *float64) string {
	if v == nil {
		return domain.Unbounded
	}
	return domain.Nice(*v)
}
