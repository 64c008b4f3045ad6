package site

import (
	"os"
	"path/filepath"
	"testing"
)

func writePost(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScan_OrderAndMetadata(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "older.md", "---\ntitle: Older\ndate: 2026-01-01T00:00:00Z\n---\nold\n")
	writePost(t, dir, "newer.md", "---\ntitle: Newer\ndate: 2026-02-01T00:00:00Z\n---\nnew\n")
	writePost(t, dir, "undated.md", "Undated body\n")

	posts, err := Scan(dir, ScanOptions{})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("len(posts) = %d, want 3", len(posts))
	}

	// Newest first, undated last
	if posts[0].Slug != "newer" || posts[1].Slug != "older" || posts[2].Slug != "undated" {
		t.Errorf("order = %s, %s, %s", posts[0].Slug, posts[1].Slug, posts[2].Slug)
	}
	if posts[0].Meta.Title != "Newer" {
		t.Errorf("Title = %q", posts[0].Meta.Title)
	}
	// A post without frontmatter falls back to its slug as title
	if posts[2].Meta.Title != "undated" {
		t.Errorf("fallback Title = %q", posts[2].Meta.Title)
	}
}

func TestScan_MalformedFrontmatterKeepsPost(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "broken.md", "---\ntitle: [unclosed\n---\nstill readable\n")

	posts, err := Scan(dir, ScanOptions{})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("len(posts) = %d, want 1", len(posts))
	}
	p := posts[0]
	if p.MetaValid {
		t.Error("MetaValid = true for malformed frontmatter")
	}
	if p.Meta.Title != "broken" {
		t.Errorf("fallback Title = %q", p.Meta.Title)
	}
	if p.Body != "still readable\n" {
		t.Errorf("Body = %q", p.Body)
	}
}

func TestScan_DraftsExcludedByDefault(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "wip.md", "---\ntitle: WIP\ndraft: true\n---\nnot yet\n")
	writePost(t, dir, "live.md", "---\ntitle: Live\n---\nready\n")

	posts, err := Scan(dir, ScanOptions{})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "live" {
		t.Fatalf("posts = %+v, want only live", posts)
	}

	posts, err = Scan(dir, ScanOptions{IncludeDrafts: true})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("len(posts) = %d with IncludeDrafts, want 2", len(posts))
	}
}

func TestScan_IgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "drafts"), 0755); err != nil {
		t.Fatal(err)
	}
	writePost(t, dir, "keep.md", "---\ntitle: Keep\n---\nkeep\n")
	writePost(t, filepath.Join(dir, "drafts"), "skip.md", "---\ntitle: Skip\n---\nskip\n")

	posts, err := Scan(dir, ScanOptions{IgnorePatterns: []string{"drafts/**"}})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "keep" {
		t.Errorf("posts = %+v, want only keep", posts)
	}
}

func TestScan_NonMarkdownIgnored(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "post.md", "---\ntitle: P\n---\nbody\n")
	writePost(t, dir, "notes.txt", "not a post")

	posts, err := Scan(dir, ScanOptions{})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("len(posts) = %d, want 1", len(posts))
	}
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"), ScanOptions{})
	if err == nil {
		t.Fatal("expected error for missing content dir")
	}
}

func TestScan_SlugNormalization(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "My First Post.md", "---\ntitle: First\n---\nbody\n")

	posts, err := Scan(dir, ScanOptions{})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "my-first-post" {
		t.Errorf("posts = %+v, want slug my-first-post", posts)
	}
}
