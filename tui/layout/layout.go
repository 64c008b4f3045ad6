// Package layout computes the responsive two-pane arrangement of the
// loam TUI: sidebar navigation plus content, side by side on wide
// terminals, stacked with the navigation at the bottom on narrow ones.
package layout

import "github.com/charmbracelet/lipgloss"

// Mode represents the terminal width category for responsive layout.
type Mode int

const (
	// ModeNarrow stacks the panes in a single column with the
	// navigation rendered after (below) the content.
	ModeNarrow Mode = iota

	// ModeWide places the navigation before (left of) the content in a row.
	ModeWide
)

// BreakpointWide is the terminal width, in columns, at which the layout
// switches from the stacked to the side-by-side arrangement.
const BreakpointWide = 80

// Detect returns the layout mode for the given terminal width.
func Detect(width int) Mode {
	if width < BreakpointWide {
		return ModeNarrow
	}
	return ModeWide
}

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNarrow:
		return "narrow"
	case ModeWide:
		return "wide"
	default:
		return "unknown"
	}
}

// HeaderHeight is the fixed height of the page header bar.
const HeaderHeight = 2

// FooterHeight is the fixed height of the footer/key-hint bar.
const FooterHeight = 1

// MinWidth is the minimum supported terminal width.
const MinWidth = 24

// MinHeight is the minimum supported terminal height.
const MinHeight = 8

// Dimensions holds the current terminal dimensions and derived layout values.
type Dimensions struct {
	// Raw terminal size
	Width  int
	Height int

	// Derived values
	Mode         Mode
	NavWidth     int
	ContentWidth int
	BodyHeight   int
}

// Calculate returns Dimensions computed from the terminal size and the
// sidebar's current width. The sidebar width is honored exactly in wide
// mode: when the row is squeezed the content pane absorbs the deficit,
// never the navigation.
func Calculate(width, height, navWidth int) Dimensions {
	mode := Detect(width)

	bodyHeight := height - HeaderHeight - FooterHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	d := Dimensions{
		Width:      width,
		Height:     height,
		Mode:       mode,
		BodyHeight: bodyHeight,
	}

	switch mode {
	case ModeWide:
		d.NavWidth = navWidth
		d.ContentWidth = width - navWidth
		if d.ContentWidth < 0 {
			d.ContentWidth = 0
		}
	default:
		// Stacked panes each span the full terminal width.
		d.NavWidth = width
		d.ContentWidth = width
	}

	return d
}

// IsViable returns true if the terminal is large enough for the TUI.
func (d Dimensions) IsViable() bool {
	return d.Width >= MinWidth && d.Height >= MinHeight
}

// TooSmallMessage returns a message to display when the terminal is too small.
func TooSmallMessage() string {
	return "Terminal too small. Please resize."
}

// Arrange joins the rendered navigation and content panes according to
// the mode: navigation before content in a wide row, content before
// navigation in a narrow stack.
func Arrange(mode Mode, nav, content string) string {
	if mode == ModeWide {
		return lipgloss.JoinHorizontal(lipgloss.Top, nav, content)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, nav)
}
