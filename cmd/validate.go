package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/loamtools/loam/cli"
	"github.com/loamtools/loam/errors"
	"github.com/loamtools/loam/schema"
	"github.com/loamtools/loam/site"
	"github.com/loamtools/loam/tui/theme"
)

// ValidationResult reports one post's schema check.
type ValidationResult struct {
	Slug   string `json:"slug"`
	Path   string `json:"path"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// NewValidateCmd creates the `validate` command.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [dir]",
		Short: "Validate post frontmatter against the schema",
		Args:  cobra.MaximumNArgs(1),
		Long: `Checks every markdown file in the content directory: the frontmatter
must parse as YAML and satisfy the frontmatter JSON Schema. Drafts are
included. Exits non-zero when any post fails.

Examples:
  # Validate the current site
  loam validate

  # Machine-readable report
  loam validate --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			logger := cli.GetLogger(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			cfg, contentDir, err := cli.LoadSite(opts, args)
			if err != nil {
				return handler.Handle(err)
			}

			scanOpts := site.OptionsFromConfig(cfg, logger.WithField("component", "validate"))
			scanOpts.IncludeDrafts = true

			posts, err := site.Scan(contentDir, scanOpts)
			if err != nil {
				return handler.Handle(err)
			}

			validator, err := schema.NewValidator()
			if err != nil {
				return handler.Handle(err)
			}

			results := make([]ValidationResult, 0, len(posts))
			failures := 0
			for _, p := range posts {
				result := validatePost(p, validator)
				if !result.Valid {
					failures++
				}
				results = append(results, result)
			}

			if opts.JSONOutput {
				out, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
			} else {
				printResults(results)
			}

			if failures > 0 {
				return errors.New(errors.ErrCodeSchemaValidation,
					fmt.Sprintf("%d of %d posts failed validation", failures, len(posts)))
			}
			return nil
		},
	}
	return cmd
}

// validatePost re-reads the raw frontmatter so the schema sees the
// author's actual keys, not the typed struct with defaults applied.
func validatePost(p site.Post, validator *schema.Validator) ValidationResult {
	result := ValidationResult{Slug: p.Slug, Path: p.Path, Valid: true}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		result.Valid = false
		result.Reason = fmt.Sprintf("unreadable: %v", err)
		return result
	}

	raw, _ := site.SplitFrontmatter(string(data))
	if raw == "" {
		result.Valid = false
		result.Reason = "missing frontmatter block"
		return result
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		result.Valid = false
		result.Reason = fmt.Sprintf("frontmatter is not valid YAML: %v", err)
		return result
	}

	if err := validator.Validate(doc); err != nil {
		result.Valid = false
		result.Reason = err.Error()
	}
	return result
}

func printResults(results []ValidationResult) {
	t := theme.DefaultTheme
	for _, r := range results {
		if r.Valid {
			fmt.Printf("%s %s\n", t.Success.Render(theme.IconSuccess), r.Slug)
		} else {
			fmt.Printf("%s %s\n", t.Error.Render(theme.IconError), r.Slug)
			fmt.Printf("  %s\n", t.Muted.Render(r.Reason))
		}
	}
}
