package app

import "github.com/loamtools/loam/site"

// PostsReloadedMsg carries the freshly scanned post list after a
// content directory change.
type PostsReloadedMsg struct {
	Posts []site.Post
}

// WatchErrorMsg reports a content watcher failure to the UI.
type WatchErrorMsg struct {
	Err error
}
