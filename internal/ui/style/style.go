// Package style holds the colors, icons and text styles shared by the logger and the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Iris   = lipgloss.Color("#8B5CF6")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Styles bind the palette to a renderer so colors follow the destination's profile.
type Styles struct {
	Label   lipgloss.Style
	Found   lipgloss.Style
	Missing lipgloss.Style
	Muted   lipgloss.Style
}

// New creates the CLI styles for r.
func New(r *lipgloss.Renderer) Styles {
	return Styles{
		Label:   r.NewStyle().Bold(true).Foreground(Iris),
		Found:   r.NewStyle().Foreground(Green),
		Missing: r.NewStyle().Foreground(Red),
		Muted:   r.NewStyle().Foreground(Slate),
	}
}

// Mark returns the check or cross icon styled for ok.
func (s Styles) Mark(ok bool) string {
	if ok {
		return s.Found.Render(Check)
	}
	return s.Missing.Render(Cross)
}
