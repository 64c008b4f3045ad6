package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// SiteConfig holds the site-wide identity used by the TUI header and
// the sidebar branding block.
type SiteConfig struct {
	Title       string `yaml:"title" toml:"title" jsonschema:"description=Site title shown in the header and sidebar branding" jsonschema_extras:"x-priority=1,x-important=true"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty" jsonschema:"description=Short site description"`
	Icon        string `yaml:"icon,omitempty" toml:"icon,omitempty" jsonschema:"description=Icon name for the sidebar branding block"`
	BaseURL     string `yaml:"base_url,omitempty" toml:"base_url,omitempty" jsonschema:"description=Canonical base URL of the published site"`
}

// ContentConfig controls where posts live and which files are skipped
// during discovery.
type ContentConfig struct {
	Dir            string   `yaml:"dir" toml:"dir" jsonschema:"description=Directory containing markdown posts (default: content)" jsonschema_extras:"x-priority=1,x-important=true"`
	IgnorePatterns []string `yaml:"ignore_patterns,omitempty" toml:"ignore_patterns,omitempty" jsonschema:"description=Glob patterns for files to skip during discovery (e.g. drafts/**)"`
	IncludeDrafts  bool     `yaml:"include_drafts,omitempty" toml:"include_drafts,omitempty" jsonschema:"description=Include posts marked draft: true in frontmatter"`
}

// NavEntryConfig defines one entry of the sidebar navigation, in display order.
type NavEntryConfig struct {
	Label string `yaml:"label" toml:"label" jsonschema:"description=Display label for the navigation entry"`
	Icon  string `yaml:"icon,omitempty" toml:"icon,omitempty" jsonschema:"description=Icon name for the navigation entry"`
	Slug  string `yaml:"slug,omitempty" toml:"slug,omitempty" jsonschema:"description=Post slug this entry links to"`
}

// TUIConfig holds presentation settings for the terminal UI.
type TUIConfig struct {
	Theme string `yaml:"theme,omitempty" toml:"theme,omitempty" jsonschema:"description=Color theme name (kanagawa, gruvbox, terminal)"`
	Icons string `yaml:"icons,omitempty" toml:"icons,omitempty" jsonschema:"description=Icon set: nerd (default) or ascii"`
}

// Config is the root loam.yml structure.
type Config struct {
	Site    SiteConfig       `yaml:"site" toml:"site" jsonschema:"description=Site identity"`
	Content ContentConfig    `yaml:"content" toml:"content" jsonschema:"description=Content discovery settings"`
	Nav     []NavEntryConfig `yaml:"nav,omitempty" toml:"nav,omitempty" jsonschema:"description=Ordered sidebar navigation entries. When omitted the nav is derived from discovered posts."`
	TUI     TUIConfig        `yaml:"tui,omitempty" toml:"tui,omitempty" jsonschema:"description=Terminal UI settings"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" jsonschema:"-"`
}

// SetDefaults fills in default values for unset fields.
func (c *Config) SetDefaults() {
	if c.Site.Title == "" {
		c.Site.Title = "Untitled Site"
	}
	if c.Content.Dir == "" {
		c.Content.Dir = "content"
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = "kanagawa"
	}
}

// UnmarshalExtension decodes an extension section (an unrecognized
// top-level key) into a strongly-typed target struct. Missing keys are
// not an error; the target is left untouched.
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct. We configure it to use
	// `yaml` tags for consistency.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
