package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loamtools/loam/site"
)

// Update handles messages and updates the model accordingly.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case PostsReloadedMsg:
		m.posts = msg.Posts
		m.watchErr = ""
		m.nav.SetRoutes(site.BuildRoutes(m.cfg.Nav, msg.Posts))
		m.openSelected()
		m.resize()
		return m, nil

	case WatchErrorMsg:
		m.watchErr = msg.Err.Error()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil

		case key.Matches(msg, m.navKeys.Toggle):
			// The toggle is the single writer of the sidebar state.
			// The width change reflows the wide layout.
			m.nav.Toggle()
			m.resize()
			return m, nil

		case key.Matches(msg, m.navKeys.Up):
			m.nav.CursorUp()
			m.openSelected()
			return m, nil

		case key.Matches(msg, m.navKeys.Down):
			m.nav.CursorDown()
			m.openSelected()
			return m, nil

		case key.Matches(msg, m.navKeys.Select):
			m.openSelected()
			return m, nil

		case key.Matches(msg, m.keys.PageUp):
			m.viewport.HalfViewUp()
			return m, nil

		case key.Matches(msg, m.keys.PageDown):
			m.viewport.HalfViewDown()
			return m, nil
		}
	}

	// Remaining messages (mouse wheel, etc.) scroll the content pane
	// only; the sidebar keeps its own scroll state.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
