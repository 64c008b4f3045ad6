package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/loamtools/loam/cli"
	"github.com/loamtools/loam/errors"
	"github.com/loamtools/loam/tui/app"
)

// NewBrowseCmd creates the `browse` command, the interactive site preview.
func NewBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [dir]",
		Short: "Browse the site in an interactive terminal preview",
		Args:  cobra.MaximumNArgs(1),
		Long: `Opens the site in a full-screen terminal preview with a collapsible
sidebar for navigation. Edits to markdown files under the content
directory reload automatically.

Keys: j/k move between posts, b collapses or expands the sidebar,
u/d scroll the post, q quits.

Examples:
  # Browse the site in the current directory
  loam browse

  # Browse with an explicit config
  loam browse -c ./site/loam.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			cfg, dir, err := cli.LoadSite(opts, args)
			if err != nil {
				return handler.Handle(err)
			}

			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				return handler.Handle(errors.ContentDirNotFound(dir))
			}

			if err := app.Run(cfg, dir); err != nil {
				return handler.Handle(err)
			}
			return nil
		},
	}
	return cmd
}
