// Package sitenav implements the sidebar navigation of the loam TUI:
// an ordered list of routes with a branding header and a single
// expanded/minimized state owned by the model.
package sitenav

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loamtools/loam/site"
	"github.com/loamtools/loam/tui/layout"
)

// State is the sidebar's expand/minimize state.
type State int

const (
	// StateExpanded shows the branding block and item labels.
	StateExpanded State = iota
	// StateMinimized collapses the sidebar to its icon rail.
	StateMinimized
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateExpanded:
		return "expanded"
	case StateMinimized:
		return "minimized"
	default:
		return "unknown"
	}
}

// Sidebar widths are literal fixed measurements. The two values are the
// endpoints the rendering layer transitions between, so they must never
// be derived from content.
const (
	WidthExpanded  = 28
	WidthMinimized = 6
)

// HeaderHeight is the fixed height of the sidebar header block. The
// block reserves this height whether or not the branding is present so
// the toggle control never shifts.
const HeaderHeight = 3

// Config defines the configuration for the sidebar.
type Config struct {
	Routes    []site.Route
	SiteTitle string
	SiteIcon  string
}

// Model is the sidebar navigation model. It is the sole owner of the
// sidebar State; children read it, only Toggle mutates it.
type Model struct {
	routes       []site.Route
	state        State
	keys         KeyMap
	cursor       int
	scrollOffset int
	width        int
	height       int
	mode         layout.Mode
	siteTitle    string
	siteIcon     string
}

// New creates a sidebar model. Every fresh mount starts expanded; the
// state is never persisted.
func New(cfg Config) Model {
	return Model{
		routes:    cfg.Routes,
		state:     StateExpanded,
		keys:      DefaultKeyMap(),
		siteTitle: cfg.SiteTitle,
		siteIcon:  cfg.SiteIcon,
	}
}

// Init is the first command that will be executed.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current sidebar state.
func (m Model) State() State {
	return m.state
}

// Toggle flips the sidebar between expanded and minimized. This is the
// only mutation of the sidebar state.
func (m *Model) Toggle() {
	if m.state == StateExpanded {
		m.state = StateMinimized
	} else {
		m.state = StateExpanded
	}
}

// Width returns the sidebar's wide-mode width for the current state.
// Pure function of state; both values are literals.
func (m Model) Width() int {
	if m.state == StateMinimized {
		return WidthMinimized
	}
	return WidthExpanded
}

// Routes returns the route list in display order.
func (m Model) Routes() []site.Route {
	return m.routes
}

// SetRoutes replaces the route list, keeping the cursor on the same
// slug when it survives the reload.
func (m *Model) SetRoutes(routes []site.Route) {
	selectedSlug := ""
	if m.cursor >= 0 && m.cursor < len(m.routes) {
		selectedSlug = m.routes[m.cursor].Slug
	}

	m.routes = routes
	m.cursor = 0
	if selectedSlug != "" {
		for i, r := range routes {
			if r.Slug == selectedSlug {
				m.cursor = i
				break
			}
		}
	}
	m.ensureCursorVisible()
}

// SetSize sets the rendering area allocated by the parent layout.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// SetMode sets the responsive layout mode. Switching mode never
// changes the sidebar state.
func (m *Model) SetMode(mode layout.Mode) {
	m.mode = mode
}

// Cursor returns the index of the highlighted route.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the highlighted route, or false for an empty list.
func (m Model) Selected() (site.Route, bool) {
	if m.cursor < 0 || m.cursor >= len(m.routes) {
		return site.Route{}, false
	}
	return m.routes[m.cursor], true
}

// SelectSlug moves the highlight to the route with the given slug.
// Reports whether the slug was found.
func (m *Model) SelectSlug(slug string) bool {
	for i, r := range m.routes {
		if r.Slug == slug {
			m.cursor = i
			m.ensureCursorVisible()
			return true
		}
	}
	return false
}

// CursorUp moves the highlight up one route.
func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		m.ensureCursorVisible()
	}
}

// CursorDown moves the highlight down one route.
func (m *Model) CursorDown() {
	if m.cursor < len(m.routes)-1 {
		m.cursor++
		m.ensureCursorVisible()
	}
}

// itemViewHeight returns how many item rows fit in the allocated area.
// The narrow stack has no header block, so the whole allocation is
// item rows.
func (m Model) itemViewHeight() int {
	h := m.height
	if m.mode == layout.ModeWide {
		h -= HeaderHeight
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) ensureCursorVisible() {
	visible := m.itemViewHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}
