package sitenav

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loamtools/loam/tui/layout"
	"github.com/loamtools/loam/tui/theme"
)

// View renders the sidebar for the current state and layout mode.
func (m Model) View() string {
	st := ComputeStyles(m.state, m.mode)

	width := st.NavWidth
	if m.mode == layout.ModeNarrow {
		width = m.width
	}
	if width < 1 {
		width = WidthMinimized
	}

	var sections []string
	if st.ShowHeader {
		sections = append(sections, m.renderHeader(st, width))
	}
	sections = append(sections, m.renderItems(st, width))

	return st.Nav.Width(width).Render(strings.Join(sections, "\n"))
}

// renderHeader renders the branding block and the toggle control. The
// block always occupies HeaderHeight rows: removing the branding must
// not shift the toggle control.
func (m Model) renderHeader(st Styles, width int) string {
	brand := ""
	if st.ShowBranding {
		icon := theme.Icon(m.siteIcon)
		title := m.siteTitle
		if title == "" {
			title = "loam"
		}
		brand = st.Branding.Render(truncate(strings.TrimSpace(icon+" "+title), width-2))
	}

	toggle := st.Toggle.Render(st.ToggleGlyph)

	return lipgloss.NewStyle().
		Width(width).
		Height(HeaderHeight).
		MaxHeight(HeaderHeight).
		Render(brand + "\n" + toggle)
}

// renderItems renders one row per visible route, icon first, label
// gated by the computed style record.
func (m Model) renderItems(st Styles, width int) string {
	if len(m.routes) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("No posts yet.")
	}

	visible := m.itemViewHeight()
	start := m.scrollOffset
	end := start + visible
	if end > len(m.routes) {
		end = len(m.routes)
	}
	if start > end {
		start = 0
	}

	var lines []string
	for i := start; i < end; i++ {
		r := m.routes[i]

		// A missing icon renders as a blank slot, never an error.
		iconCell := lipgloss.NewStyle().Width(2).MaxHeight(1).Render(theme.Icon(r.Icon))

		label := ""
		if st.ShowLabel {
			label = truncate(r.DisplayLabel(), width-4)
		}

		line := strings.TrimRight(iconCell+" "+label, " ")
		style := st.Item
		if i == m.cursor {
			style = st.ItemSelected
		}
		lines = append(lines, style.Width(width).MaxHeight(1).Render(line))
	}

	if m.mode == layout.ModeWide && len(m.routes) > visible {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render(
			fmt.Sprintf("%d-%d of %d", start+1, end, len(m.routes))))
	}

	return strings.Join(lines, "\n")
}

// truncate shortens a string to max runes, leaving room for an ellipsis.
func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
