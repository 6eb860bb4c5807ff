// Package style holds the colors, icons and badges shared by the CLI output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/memo/internal/core/domain"
)

// Brand colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
)

// SourceColor returns the color used for a cache source.
func SourceColor(source domain.CacheSource) lipgloss.Color {
	switch source {
	case domain.SourceLocal:
		return Green
	case domain.SourceRemote:
		return Iris
	default:
		return Yellow
	}
}

// Badge renders a short, colored label for a cache source.
func Badge(source domain.CacheSource) string {
	label := "built"
	switch source {
	case domain.SourceLocal:
		label = "local"
	case domain.SourceRemote:
		label = "remote"
	}
	return lipgloss.NewStyle().Foreground(SourceColor(source)).Bold(true).Render(label)
}
