package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorAqua   = lipgloss.Color("#458588")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// NodeStyle maps a node's display color onto the terminal palette.
func NodeStyle(c domain.Color) lipgloss.Style {
	switch c {
	case domain.ColorUnsolved:
		return StyleYellow
	case domain.ColorSolved:
		return StyleBlue
	case domain.ColorCutoff:
		return StyleRed
	case domain.ColorConflict:
		return StyleOrange
	case domain.ColorMarkReprop:
		return StyleDim
	case domain.ColorReprop:
		return StyleAqua
	case domain.ColorOptimal:
		return StyleGreen
	case domain.ColorInferior:
		return StylePurple
	default:
		return StyleFg
	}
}

// NodeLabel names a display color the way the legend does.
func NodeLabel(c domain.Color) string {
	switch c {
	case domain.ColorUnsolved:
		return "unsolved"
	case domain.ColorSolved:
		return "solved"
	case domain.ColorCutoff:
		return "cutoff"
	case domain.ColorConflict:
		return "conflict"
	case domain.ColorMarkReprop:
		return "marked"
	case domain.ColorReprop:
		return "repropagated"
	case domain.ColorOptimal:
		return "optimal"
	case domain.ColorInferior:
		return "inferior"
	default:
		return string(c)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
