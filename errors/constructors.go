package errors

import "fmt"

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *LoamError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *LoamError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// ContentDirNotFound creates a content directory not found error
func ContentDirNotFound(dir string) *LoamError {
	return New(ErrCodeContentDirNotFound, fmt.Sprintf("content directory not found: %s", dir)).
		WithDetail("dir", dir)
}

// PostNotFound creates a post not found error
func PostNotFound(slug string) *LoamError {
	return New(ErrCodePostNotFound, fmt.Sprintf("post '%s' not found", slug)).
		WithDetail("slug", slug)
}

// PostInvalid creates an invalid post error
func PostInvalid(path string, err error) *LoamError {
	return Wrap(err, ErrCodePostInvalid, fmt.Sprintf("failed to read post: %s", path)).
		WithDetail("path", path)
}

// FrontmatterInvalid creates an invalid frontmatter error
func FrontmatterInvalid(path string, err error) *LoamError {
	return Wrap(err, ErrCodeFrontmatterInvalid, fmt.Sprintf("malformed frontmatter in %s", path)).
		WithDetail("path", path)
}

// SchemaValidation creates a schema validation error for a post
func SchemaValidation(path string, err error) *LoamError {
	return Wrap(err, ErrCodeSchemaValidation, fmt.Sprintf("frontmatter failed schema validation: %s", path)).
		WithDetail("path", path)
}

// WatchFailed creates a content watcher error
func WatchFailed(dir string, err error) *LoamError {
	return Wrap(err, ErrCodeWatchFailed, fmt.Sprintf("failed to watch content directory: %s", dir)).
		WithDetail("dir", dir)
}
