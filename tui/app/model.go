// Package app composes the loam TUI: page header, sidebar navigation,
// and the scrollable content pane, arranged responsively by terminal
// width.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loamtools/loam/config"
	"github.com/loamtools/loam/site"
	"github.com/loamtools/loam/tui/layout"
	"github.com/loamtools/loam/tui/sitenav"
)

// KeyMap defines the application-level keybindings.
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default application keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "u"),
			key.WithHelp("pgup/u", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "d"),
			key.WithHelp("pgdn/d", "scroll down"),
		),
	}
}

// Model is the root TUI model.
type Model struct {
	cfg     *config.Config
	posts   []site.Post
	nav     sitenav.Model
	keys    KeyMap
	navKeys sitenav.KeyMap
	help    help.Model

	viewport viewport.Model
	current  site.Post
	hasPost  bool
	watchErr string

	width  int
	height int
	dims   layout.Dimensions
	ready  bool
}

// New creates the root model from the loaded configuration and the
// initially discovered posts.
func New(cfg *config.Config, posts []site.Post) Model {
	nav := sitenav.New(sitenav.Config{
		Routes:    site.BuildRoutes(cfg.Nav, posts),
		SiteTitle: cfg.Site.Title,
		SiteIcon:  cfg.Site.Icon,
	})

	m := Model{
		cfg:     cfg,
		posts:   posts,
		nav:     nav,
		keys:    DefaultKeyMap(),
		navKeys: sitenav.DefaultKeyMap(),
		help:    help.New(),
	}
	m.openSelected()
	return m
}

// Init is the first command that will be executed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Nav exposes the sidebar model, primarily for tests.
func (m Model) Nav() sitenav.Model {
	return m.nav
}

// SelectSlug moves the selection to the post with the given slug, if
// it exists, and opens it.
func (m *Model) SelectSlug(slug string) bool {
	if !m.nav.SelectSlug(slug) {
		return false
	}
	m.openSelected()
	return true
}

// ShortHelp returns the keybindings shown in the one-line footer.
func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.navKeys.Down, m.navKeys.Up, m.navKeys.Toggle,
		m.keys.Help, m.keys.Quit,
	}
}

// FullHelp returns the keybinding columns shown when help is expanded.
func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.navKeys.Up, m.navKeys.Down, m.navKeys.Select},
		{m.navKeys.Toggle, m.keys.PageUp, m.keys.PageDown},
		{m.keys.Help, m.keys.Quit},
	}
}

// footerHeight is the number of rows the key-hint bar occupies, which
// grows when full help is shown.
func (m Model) footerHeight() int {
	if !m.help.ShowAll {
		return layout.FooterHeight
	}
	rows := 0
	for _, col := range m.FullHelp() {
		if len(col) > rows {
			rows = len(col)
		}
	}
	return rows
}

// openSelected loads the post behind the highlighted route into the
// content pane. A route without a matching post clears the pane.
func (m *Model) openSelected() {
	route, ok := m.nav.Selected()
	if !ok {
		m.hasPost = false
		m.viewport.SetContent("")
		return
	}

	post, found := site.FindPost(m.posts, route.Slug)
	if !found {
		m.hasPost = false
		m.viewport.SetContent(renderMissing(route))
		return
	}

	m.current = post
	m.hasPost = true
	m.viewport.SetContent(renderPost(post, m.dims.ContentWidth))
	m.viewport.GotoTop()
}

// resize recomputes the layout after a terminal size change or a
// sidebar toggle and pushes the new dimensions into both panes.
func (m *Model) resize() {
	m.dims = layout.Calculate(m.width, m.height, m.nav.Width())
	m.nav.SetMode(m.dims.Mode)
	m.help.Width = m.width

	// Expanded help claims rows beyond the single-line footer the
	// layout already reserves.
	bodyHeight := m.dims.BodyHeight - (m.footerHeight() - layout.FooterHeight)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	if m.dims.Mode == layout.ModeWide {
		m.nav.SetSize(m.dims.NavWidth, bodyHeight)
		m.viewport.Width = m.dims.ContentWidth
		m.viewport.Height = bodyHeight
	} else {
		// The stacked nav takes its natural height below the content.
		navHeight := len(m.nav.Routes())
		if navHeight > bodyHeight/2 {
			navHeight = bodyHeight / 2
		}
		m.nav.SetSize(m.dims.Width, navHeight)
		m.viewport.Width = m.dims.ContentWidth
		m.viewport.Height = bodyHeight - navHeight
		if m.viewport.Height < 1 {
			m.viewport.Height = 1
		}
	}

	if m.hasPost {
		m.viewport.SetContent(renderPost(m.current, m.dims.ContentWidth))
	}
}
