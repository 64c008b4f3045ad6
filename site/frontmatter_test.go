package site

import (
	"testing"
	"time"
)

func TestParseFrontmatter(t *testing.T) {
	content := `---
title: Hello World
date: 2026-01-15T00:00:00Z
author: Sam
tags: [intro, meta]
icon: home
---

First paragraph.
`
	meta, body, err := ParseFrontmatter(content)
	if err != nil {
		t.Fatalf("ParseFrontmatter() error = %v", err)
	}
	if meta.Title != "Hello World" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.Author != "Sam" {
		t.Errorf("Author = %q", meta.Author)
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "intro" {
		t.Errorf("Tags = %v", meta.Tags)
	}
	if meta.Icon != "home" {
		t.Errorf("Icon = %q", meta.Icon)
	}
	want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	if !meta.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", meta.Date, want)
	}
	if body != "First paragraph.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseFrontmatter_NoBlock(t *testing.T) {
	meta, body, err := ParseFrontmatter("Just some markdown.\n")
	if err != nil {
		t.Fatalf("ParseFrontmatter() error = %v", err)
	}
	if meta.Title != "" {
		t.Errorf("Title = %q, want empty", meta.Title)
	}
	if body != "Just some markdown.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseFrontmatter_Unterminated(t *testing.T) {
	content := "---\ntitle: Oops\n\nno closing delimiter"
	meta, body, err := ParseFrontmatter(content)
	if err != nil {
		t.Fatalf("ParseFrontmatter() error = %v", err)
	}
	if meta.Title != "" {
		t.Errorf("unterminated block should not parse as frontmatter, got Title=%q", meta.Title)
	}
	if body != content {
		t.Errorf("body = %q, want full input", body)
	}
}

func TestParseFrontmatter_MalformedYAML(t *testing.T) {
	content := "---\ntitle: [unclosed\n---\nbody text\n"
	_, body, err := ParseFrontmatter(content)
	if err == nil {
		t.Fatal("expected YAML error for malformed frontmatter")
	}
	// Body must survive so the caller can render with fallbacks
	if body != "body text\n" {
		t.Errorf("body = %q", body)
	}
}

func TestSplitFrontmatter_CRLF(t *testing.T) {
	fm, _ := SplitFrontmatter("---\r\ntitle: T\r\n---\r\nbody\r\n")
	if fm != "title: T" {
		t.Errorf("frontmatter = %q", fm)
	}
}

func TestSplitFrontmatter_DelimiterPrefixLines(t *testing.T) {
	content := "---\ntitle: Dashes\nrule: ----\nnote: ---not a fence\n---\nBody.\n"
	fm, body := SplitFrontmatter(content)
	if fm != "title: Dashes\nrule: ----\nnote: ---not a fence" {
		t.Errorf("frontmatter truncated at a non-delimiter line: %q", fm)
	}
	if body != "Body.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestSplitFrontmatter_TerminatorAtEOF(t *testing.T) {
	fm, body := SplitFrontmatter("---\ntitle: Tail\n---")
	if fm != "title: Tail" {
		t.Errorf("frontmatter = %q", fm)
	}
	if body != "" {
		t.Errorf("body = %q", body)
	}
}
