package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loamtools/loam/site"
	"github.com/loamtools/loam/tui/layout"
	"github.com/loamtools/loam/tui/theme"
)

// View renders the full application frame.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if !m.dims.IsViable() {
		return layout.TooSmallMessage()
	}

	header := m.renderHeader()
	body := layout.Arrange(m.dims.Mode, m.nav.View(), m.viewport.View())
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderHeader renders the static page header bar.
func (m Model) renderHeader() string {
	t := theme.DefaultTheme
	title := t.Bold.Render(m.cfg.Site.Title)
	if m.cfg.Site.Description != "" && m.dims.Mode == layout.ModeWide {
		title += "  " + t.Muted.Render(m.cfg.Site.Description)
	}
	if m.watchErr != "" {
		title += "\n" + t.Warning.Render(theme.IconWarning+" watcher: "+m.watchErr)
	}
	return lipgloss.NewStyle().
		Width(m.dims.Width).
		Height(layout.HeaderHeight).
		MaxHeight(layout.HeaderHeight).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Colors.Border).
		Render(title)
}

// renderFooter renders the key-hint bar.
func (m Model) renderFooter() string {
	return lipgloss.NewStyle().
		Width(m.dims.Width).
		Render(m.help.View(m))
}

// renderPost formats a post for the content pane: title, metadata
// line, then the raw markdown body.
func renderPost(p site.Post, width int) string {
	t := theme.DefaultTheme
	if width < 1 {
		width = 1
	}

	var b strings.Builder
	b.WriteString(t.Title.Render(p.DisplayTitle()))
	b.WriteString("\n")

	var meta []string
	if !p.Meta.Date.IsZero() {
		meta = append(meta, theme.IconCalendar+" "+p.Meta.Date.Format("2006-01-02"))
	}
	if p.Meta.Author != "" {
		meta = append(meta, theme.IconAuthor+" "+p.Meta.Author)
	}
	if len(p.Meta.Tags) > 0 {
		meta = append(meta, theme.IconTag+" "+strings.Join(p.Meta.Tags, ", "))
	}
	if p.Meta.Draft {
		meta = append(meta, t.Warning.Render(theme.IconDraft+" draft"))
	}
	if len(meta) > 0 {
		b.WriteString(t.Muted.Render(strings.Join(meta, "   ")))
		b.WriteString("\n")
	}
	if !p.MetaValid {
		b.WriteString(t.Warning.Render(theme.IconWarning + " malformed frontmatter"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(p.Body))
	return b.String()
}

// renderMissing renders the placeholder for a nav entry whose slug has
// no matching post.
func renderMissing(r site.Route) string {
	t := theme.DefaultTheme
	return fmt.Sprintf("%s\n\n%s",
		t.Title.Render(r.DisplayLabel()),
		t.Muted.Render("No post found for this entry."))
}
