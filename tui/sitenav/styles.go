package sitenav

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/loamtools/loam/tui/layout"
	"github.com/loamtools/loam/tui/theme"
)

// Styles is the structured render decision record for the sidebar: an
// explicit pure function of State and layout.Mode replaces ad hoc
// conditional style composition.
type Styles struct {
	// ShowHeader gates the whole header block (branding + toggle).
	// The header belongs to the wide arrangement only, which is why
	// narrow-mode rendering is invariant under state changes.
	ShowHeader bool
	// ShowBranding gates the branding block within the header. When
	// false the branding is absent from the output entirely, not
	// hidden; the header block still reserves its fixed height.
	ShowBranding bool
	// ShowLabel gates item labels. The hiding rule is scoped to the
	// wide mode: the narrow arrangement always shows labels.
	ShowLabel bool
	// ToggleGlyph is the orientation of the toggle control's chevron.
	ToggleGlyph string
	// NavWidth is the wide-mode sidebar width literal for the state.
	NavWidth int

	Nav          lipgloss.Style
	Branding     lipgloss.Style
	Toggle       lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
}

// ComputeStyles maps State × Mode to the sidebar's render decisions.
// Deterministic and side-effect free.
func ComputeStyles(state State, mode layout.Mode) Styles {
	t := theme.DefaultTheme

	s := Styles{
		ShowHeader:   mode == layout.ModeWide,
		ShowBranding: state == StateExpanded,
		ShowLabel:    mode == layout.ModeNarrow || state == StateExpanded,
		NavWidth:     WidthExpanded,

		Nav: lipgloss.NewStyle().
			Background(t.Colors.SubtleBackground),
		Branding: t.Accent,
		Toggle:   t.Highlight,
		Item:     t.Normal,
		ItemSelected: lipgloss.NewStyle().
			Background(t.Colors.SelectedBackground).
			Foreground(t.Colors.LightText).
			Bold(true),
	}

	if state == StateMinimized {
		s.NavWidth = WidthMinimized
		s.ToggleGlyph = theme.IconChevRight
	} else {
		s.ToggleGlyph = theme.IconChevLeft
	}

	return s
}
