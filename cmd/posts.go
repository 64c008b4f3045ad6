package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/loamtools/loam/cli"
	"github.com/loamtools/loam/site"
	"github.com/loamtools/loam/tui/theme"
)

// postRow is the JSON shape of one `posts --json` entry.
type postRow struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Date  string   `json:"date,omitempty"`
	Tags  []string `json:"tags,omitempty"`
	Draft bool     `json:"draft,omitempty"`
}

// NewPostsCmd creates the `posts` command.
func NewPostsCmd() *cobra.Command {
	var includeDrafts bool

	cmd := &cobra.Command{
		Use:   "posts [dir]",
		Short: "List the posts discovered in the content directory",
		Args:  cobra.MaximumNArgs(1),
		Long: `Lists every post in the content directory in navigation order:
newest first, undated posts last.

Examples:
  # List published posts
  loam posts

  # Include drafts
  loam posts --drafts

  # Machine-readable output
  loam posts --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			logger := cli.GetLogger(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			cfg, contentDir, err := cli.LoadSite(opts, args)
			if err != nil {
				return handler.Handle(err)
			}

			scanOpts := site.OptionsFromConfig(cfg, logger.WithField("component", "posts"))
			if includeDrafts {
				scanOpts.IncludeDrafts = true
			}

			posts, err := site.Scan(contentDir, scanOpts)
			if err != nil {
				return handler.Handle(err)
			}

			if opts.JSONOutput {
				rows := make([]postRow, 0, len(posts))
				for _, p := range posts {
					row := postRow{
						Slug:  p.Slug,
						Title: p.DisplayTitle(),
						Tags:  p.Meta.Tags,
						Draft: p.Meta.Draft,
					}
					if !p.Meta.Date.IsZero() {
						row.Date = p.Meta.Date.Format("2006-01-02")
					}
					rows = append(rows, row)
				}
				out, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			printPostsTable(posts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeDrafts, "drafts", false, "Include posts marked draft: true")
	return cmd
}

func printPostsTable(posts []site.Post) {
	t := theme.DefaultTheme

	if len(posts) == 0 {
		fmt.Println(t.Muted.Render("No posts found."))
		return
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 40 {
		width = 80
	}

	slugWidth := 0
	for _, p := range posts {
		if len(p.Slug) > slugWidth {
			slugWidth = len(p.Slug)
		}
	}
	if slugWidth > 24 {
		slugWidth = 24
	}

	// slug, date, then the title claims the leftover columns.
	const dateWidth = 10
	titleWidth := width - slugWidth - dateWidth - 6
	if titleWidth < 10 {
		titleWidth = 10
	}

	fmt.Printf("%s  %s  %s\n",
		t.TableHeader.Render(pad("SLUG", slugWidth)),
		t.TableHeader.Render(pad("DATE", dateWidth)),
		t.TableHeader.Render("TITLE"))

	for _, p := range posts {
		date := ""
		if !p.Meta.Date.IsZero() {
			date = p.Meta.Date.Format("2006-01-02")
		}
		title := p.DisplayTitle()
		if p.Meta.Draft {
			title += " " + t.Warning.Render("["+theme.IconDraft+" draft]")
		}
		if len(p.Meta.Tags) > 0 {
			title += " " + t.Muted.Render(theme.IconTag+" "+strings.Join(p.Meta.Tags, ","))
		}
		fmt.Printf("%s  %s  %s\n",
			pad(clip(p.Slug, slugWidth), slugWidth),
			pad(date, dateWidth),
			title)
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func clip(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
