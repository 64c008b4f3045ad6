package config

import (
	"fmt"

	"github.com/moby/patternmatcher"

	"github.com/loamtools/loam/errors"
)

// Validate performs semantic validation of the configuration. It is
// called after defaults have been applied, so required fields are only
// those that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Content.Dir == "" {
		return errors.New(errors.ErrCodeConfigValidation, "content.dir must not be empty")
	}

	// Ignore patterns must be compilable; a bad pattern is a config
	// error, not a runtime surprise during content scanning.
	if len(c.Content.IgnorePatterns) > 0 {
		if _, err := patternmatcher.New(c.Content.IgnorePatterns); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation,
				fmt.Sprintf("invalid content.ignore_patterns: %v", c.Content.IgnorePatterns))
		}
	}

	for i, entry := range c.Nav {
		if entry.Label == "" && entry.Slug == "" {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("nav[%d]: entry must set at least one of label or slug", i))
		}
	}

	return nil
}
