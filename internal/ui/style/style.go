// Package style holds the colors and icons shared by every terminal writer
// of the pipeline: the logger, the task renderer and the status banner.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#0EA5E9")
	Muted  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Bullet  = "*"
)

// Task returns the style of the task name prefix in progress lines, bound to
// the renderer of the writer it is printed on.
func Task(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Accent).Bold(true)
}
