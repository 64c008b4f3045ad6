package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loamtools/loam/config"
	"github.com/loamtools/loam/logging"
	"github.com/loamtools/loam/site"
	"github.com/loamtools/loam/state"
	"github.com/loamtools/loam/tui"
)

// watchDebounce coalesces editor save bursts into one reload.
const watchDebounce = 250 * time.Millisecond

// Run starts the browse TUI for the given configuration and content
// directory, watching the directory for changes until the user quits.
func Run(cfg *config.Config, contentDir string) error {
	tui.InitializeTUI()
	logger := logging.NewLogger("browse")

	opts := site.OptionsFromConfig(cfg, logger)
	posts, err := site.Scan(contentDir, opts)
	if err != nil {
		return err
	}
	logger.WithField("posts", len(posts)).Info("Content scanned")

	model := New(cfg, posts)
	if lastSlug, err := state.GetString(state.KeyLastPost); err == nil && lastSlug != "" {
		model.SelectSlug(lastSlug)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	watcher, err := site.NewWatcher(contentDir, watchDebounce, func() {
		reloaded, err := site.Scan(contentDir, opts)
		if err != nil {
			logger.WithError(err).Warn("Content reload failed")
			p.Send(WatchErrorMsg{Err: err})
			return
		}
		p.Send(PostsReloadedMsg{Posts: reloaded})
	})
	if err != nil {
		return err
	}
	watcher.Start()
	defer watcher.Close()

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(Model); ok {
		if route, ok := m.Nav().Selected(); ok {
			if err := state.Set(state.KeyLastPost, route.Slug); err != nil {
				logger.WithError(err).Debug("Could not persist last post")
			}
		}
	}
	return nil
}
