package app

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loamtools/loam/config"
	"github.com/loamtools/loam/site"
	"github.com/loamtools/loam/tui/sitenav"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SetDefaults()
	cfg.Site.Title = "Field Notes"
	cfg.Site.Description = "notes from the garden"
	return cfg
}

func testPosts() []site.Post {
	return []site.Post{
		{
			Slug:      "home",
			Meta:      site.PostMeta{Title: "Home", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
			Body:      "Welcome to the garden.",
			MetaValid: true,
		},
		{
			Slug:      "composting",
			Meta:      site.PostMeta{Title: "Composting", Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
			Body:      "Layer greens and browns.",
			MetaValid: true,
		},
		{
			Slug:      "tools",
			Meta:      site.PostMeta{Title: "Tools"},
			Body:      "A good trowel goes far.",
			MetaValid: true,
		},
	}
}

func newTestApp(t *testing.T, width, height int) Model {
	t.Helper()
	m := New(testConfig(), testPosts())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestView_LoadingBeforeFirstSize(t *testing.T) {
	m := New(testConfig(), testPosts())
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() before first WindowSizeMsg = %q, want Loading...", got)
	}
}

func TestView_RendersAfterSize(t *testing.T) {
	m := newTestApp(t, 120, 40)
	out := m.View()
	if strings.Contains(out, "Loading") {
		t.Fatal("View() still shows loading screen after WindowSizeMsg")
	}
	if !strings.Contains(out, "Field Notes") {
		t.Error("View() missing site title in header")
	}
	if !strings.Contains(out, "Welcome to the garden.") {
		t.Error("View() missing body of the initially selected post")
	}
}

func TestToggle_ReflowsWideLayout(t *testing.T) {
	m := newTestApp(t, 120, 40)
	if m.Nav().Width() != sitenav.WidthExpanded {
		t.Fatalf("nav width = %d, want %d", m.Nav().Width(), sitenav.WidthExpanded)
	}

	updated, _ := m.Update(keyMsg('b'))
	m = updated.(Model)

	if m.Nav().State() != sitenav.StateMinimized {
		t.Errorf("after toggle State() = %v, want minimized", m.Nav().State())
	}
	if m.Nav().Width() != sitenav.WidthMinimized {
		t.Errorf("after toggle nav width = %d, want %d", m.Nav().Width(), sitenav.WidthMinimized)
	}
	// The content pane reclaims the freed columns.
	if m.dims.ContentWidth != 120-sitenav.WidthMinimized {
		t.Errorf("content width = %d, want %d", m.dims.ContentWidth, 120-sitenav.WidthMinimized)
	}
}

func TestResize_PreservesSidebarState(t *testing.T) {
	m := newTestApp(t, 120, 40)
	updated, _ := m.Update(keyMsg('b'))
	m = updated.(Model)

	// Shrink below the breakpoint and back. The stored state survives
	// both transitions.
	updated, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	m = updated.(Model)
	if m.Nav().State() != sitenav.StateMinimized {
		t.Error("narrow resize changed sidebar state")
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	if m.Nav().State() != sitenav.StateMinimized {
		t.Error("returning to wide lost the minimized state")
	}
	if m.Nav().Width() != sitenav.WidthMinimized {
		t.Errorf("wide again: nav width = %d, want %d", m.Nav().Width(), sitenav.WidthMinimized)
	}
}

func TestToggle_NarrowViewUnchanged(t *testing.T) {
	m := newTestApp(t, 60, 40)
	before := m.View()

	updated, _ := m.Update(keyMsg('b'))
	m = updated.(Model)

	if after := m.View(); after != before {
		t.Error("toggling in narrow mode changed the rendered frame")
	}
}

func TestNavigation_OpensSelectedPost(t *testing.T) {
	m := newTestApp(t, 120, 40)

	updated, _ := m.Update(keyMsg('j'))
	m = updated.(Model)

	route, ok := m.Nav().Selected()
	if !ok {
		t.Fatal("no selected route after moving cursor")
	}
	if route.Slug != "composting" {
		t.Fatalf("selected slug = %q, want composting", route.Slug)
	}
	if !strings.Contains(m.View(), "Layer greens and browns.") {
		t.Error("content pane does not show the newly selected post")
	}
}

func TestPostsReloaded_PreservesSelection(t *testing.T) {
	m := newTestApp(t, 120, 40)
	updated, _ := m.Update(keyMsg('j'))
	m = updated.(Model)

	// Reload with an extra post prepended; selection follows the slug,
	// not the index.
	posts := append([]site.Post{{
		Slug:      "pruning",
		Meta:      site.PostMeta{Title: "Pruning", Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		Body:      "Cut above the node.",
		MetaValid: true,
	}}, testPosts()...)

	updated, _ = m.Update(PostsReloadedMsg{Posts: posts})
	m = updated.(Model)

	route, ok := m.Nav().Selected()
	if !ok {
		t.Fatal("no selected route after reload")
	}
	if route.Slug != "composting" {
		t.Errorf("selected slug after reload = %q, want composting", route.Slug)
	}
	if len(m.Nav().Routes()) != 4 {
		t.Errorf("routes after reload = %d, want 4", len(m.Nav().Routes()))
	}
}

func TestQuit(t *testing.T) {
	m := newTestApp(t, 120, 40)
	_, cmd := m.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("quit key produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit key command = %T, want tea.QuitMsg", cmd())
	}
}

func TestView_TooSmall(t *testing.T) {
	m := newTestApp(t, 10, 4)
	if !strings.Contains(m.View(), "small") {
		t.Errorf("undersized terminal View() = %q, want too-small notice", m.View())
	}
}

func TestConfiguredNav_MissingPost(t *testing.T) {
	cfg := testConfig()
	cfg.Nav = []config.NavEntryConfig{
		{Label: "Home", Icon: "home", Slug: "home"},
		{Label: "Projects", Icon: "page", Slug: "projects"},
	}
	m := New(cfg, testPosts())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	updated, _ = m.Update(keyMsg('j'))
	m = updated.(Model)

	if !strings.Contains(m.View(), "No post found") {
		t.Error("nav entry without a matching post should render the placeholder")
	}
}

func TestHelpToggle_ResizesContent(t *testing.T) {
	m := newTestApp(t, 120, 40)
	collapsed := m.viewport.Height

	updated, _ := m.Update(keyMsg('?'))
	m = updated.(Model)
	if !m.help.ShowAll {
		t.Fatal("'?' should expand the help footer")
	}
	if m.viewport.Height >= collapsed {
		t.Errorf("viewport height = %d with full help, want less than %d", m.viewport.Height, collapsed)
	}

	updated, _ = m.Update(keyMsg('?'))
	m = updated.(Model)
	if m.help.ShowAll {
		t.Fatal("'?' again should collapse the help footer")
	}
	if m.viewport.Height != collapsed {
		t.Errorf("viewport height = %d after collapsing help, want %d", m.viewport.Height, collapsed)
	}
}

func TestNarrowLayout_FitsTerminalHeight(t *testing.T) {
	posts := make([]site.Post, 30)
	for i := range posts {
		posts[i] = site.Post{
			Slug:      fmt.Sprintf("note-%02d", i),
			Meta:      site.PostMeta{Title: fmt.Sprintf("Note %d", i)},
			Body:      "body",
			MetaValid: true,
		}
	}
	m := New(testConfig(), posts)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = updated.(Model)

	if got := lipgloss.Height(m.View()); got > 20 {
		t.Errorf("narrow frame height = %d for a 20-row terminal", got)
	}
}

func TestWatchError_SurfacedInHeader(t *testing.T) {
	m := newTestApp(t, 120, 40)
	updated, _ := m.Update(WatchErrorMsg{Err: errors.New("inotify watch limit reached")})
	m = updated.(Model)

	if !strings.Contains(m.View(), "watcher: inotify watch limit reached") {
		t.Error("watcher failure should be visible in the header")
	}

	// A successful rescan clears the warning.
	updated, _ = m.Update(PostsReloadedMsg{Posts: testPosts()})
	m = updated.(Model)
	if strings.Contains(m.View(), "watcher:") {
		t.Error("reload should clear the watcher warning")
	}
}
