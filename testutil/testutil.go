package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteConfig writes a loam.yml into dir and returns its path.
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "loam.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WritePost writes a markdown post into the content directory,
// creating intermediate directories as needed.
func WritePost(t *testing.T, contentDir, name, frontmatter, body string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(contentDir, 0755))

	content := body
	if frontmatter != "" {
		content = "---\n" + frontmatter + "\n---\n" + body
	}

	path := filepath.Join(contentDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// SetupSite creates a site directory with a loam.yml and a content
// directory holding a few valid posts, then chdirs into it for the
// duration of the test. Returns the site root.
func SetupSite(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	WriteConfig(t, dir, `site:
  title: Test Site
content:
  dir: content
`)

	contentDir := filepath.Join(dir, "content")
	WritePost(t, contentDir, "first.md", "title: First\ndate: 2026-01-02T00:00:00Z", "first body\n")
	WritePost(t, contentDir, "second.md", "title: Second\ndate: 2026-01-01T00:00:00Z", "second body\n")

	Chdir(t, dir)
	return dir
}

// Chdir changes into dir and restores the previous working directory
// when the test finishes.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(oldWd)
	})
}
