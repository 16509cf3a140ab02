package render

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorDirectory = lipgloss.Color("39")  // Blue
	ColorFile      = lipgloss.Color("252") // Light gray
	ColorMuted     = lipgloss.Color("240") // Dark gray
	ColorError     = lipgloss.Color("196") // Red
)

// styles are bound to one lipgloss renderer so the color profile does not
// depend on the process's stdout.
type styles struct {
	directory lipgloss.Style
	file      lipgloss.Style
	size      lipgloss.Style
	err       lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		directory: r.NewStyle().
			Bold(true).
			Foreground(ColorDirectory),
		file: r.NewStyle().
			Foreground(ColorFile),
		size: r.NewStyle().
			Foreground(ColorMuted),
		err: r.NewStyle().
			Foreground(ColorError),
	}
}
