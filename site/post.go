// Package site models the content side of a loam site: markdown posts
// with YAML frontmatter, and the ordered route list that drives the
// sidebar navigation.
package site

import (
	"time"
)

//go:generate go run ../tools/schema-generator/

// PostMeta represents the frontmatter fields of a markdown post.
type PostMeta struct {
	Title       string    `yaml:"title" json:"title" jsonschema:"description=Post title shown in listings and the content pane"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty" jsonschema:"description=Short summary used in listings"`
	Date        time.Time `yaml:"date,omitempty" json:"date,omitempty" jsonschema:"description=Publication date"`
	Author      string    `yaml:"author,omitempty" json:"author,omitempty" jsonschema:"description=Post author"`
	Tags        []string  `yaml:"tags,omitempty" json:"tags,omitempty" jsonschema:"description=Free-form tags"`
	Icon        string    `yaml:"icon,omitempty" json:"icon,omitempty" jsonschema:"description=Symbolic icon name for navigation"`
	Draft       bool      `yaml:"draft,omitempty" json:"draft,omitempty" jsonschema:"description=Drafts are skipped unless content.include_drafts is set"`
}

// Post is one markdown document discovered in the content directory.
type Post struct {
	// Slug identifies the post; derived from the file name.
	Slug string `json:"slug"`
	// Path is the absolute path of the source file.
	Path string   `json:"path"`
	Meta PostMeta `json:"meta"`
	// Body is the markdown content after the frontmatter block.
	Body string `json:"-"`
	// MetaValid is false when the frontmatter failed to parse and
	// fallback metadata was substituted.
	MetaValid bool `json:"metaValid"`
}

// DisplayTitle returns the post title, falling back to the slug for
// posts with missing or malformed frontmatter.
func (p Post) DisplayTitle() string {
	if p.Meta.Title != "" {
		return p.Meta.Title
	}
	if p.Slug != "" {
		return p.Slug
	}
	return FallbackLabel
}
