package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
)

// Palette is the set of colors of one theme.
type Palette struct {
	Primary   string
	Text      string
	Muted     string
	Success   string
	Error     string
	Archived  string
	Border    string
	Highlight string
}

var palettes = map[models.Theme]Palette{
	models.ThemeLight: {
		Primary:   "#4F46E5",
		Text:      "#111827",
		Muted:     "#6B7280",
		Success:   "#047857",
		Error:     "#B91C1C",
		Archived:  "#92400E",
		Border:    "#D1D5DB",
		Highlight: "#1D4ED8",
	},
	models.ThemeDark: {
		Primary:   "#A78BFA",
		Text:      "#F9FAFB",
		Muted:     "#9CA3AF",
		Success:   "#10B981",
		Error:     "#EF4444",
		Archived:  "#F59E0B",
		Border:    "#374151",
		Highlight: "#60A5FA",
	},
}

// PaletteFor returns the palette of t, falling back to the default theme.
func PaletteFor(t models.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[models.DefaultTheme]
}

// Styles are the lipgloss styles every renderer draws with.
type Styles struct {
	Theme models.Theme

	Title    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Archived lipgloss.Style
	Prompt   lipgloss.Style
	Panel    lipgloss.Style
}

// NewStyles builds the styles of theme t.
func NewStyles(t models.Theme) Styles {
	p := PaletteFor(t)
	return Styles{
		Theme: t,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Primary)),
		Body: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Error)),
		Archived: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(p.Archived)),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Highlight)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(0, 1),
	}
}
