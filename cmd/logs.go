package cmd

import (
	"bufio"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hpcloud/tail"
	"github.com/spf13/cobra"

	"github.com/loamtools/loam/cli"
	"github.com/loamtools/loam/tui/theme"
)

// NewLogsCmd creates the `logs` command.
func NewLogsCmd() *cobra.Command {
	var follow bool
	var tailLines int
	var component string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Display loam's own log files for this site",
		Long: `Shows log output written under .loam/logs in the site directory.
By default the last lines of every component's log are printed. Use
--component to narrow to one component and -f to stream new lines.

Examples:
  # Show recent log lines
  loam logs

  # Follow the content watcher
  loam logs --component content-watcher -f

  # Last 100 lines across all components
  loam logs --tail 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			files, err := logFiles(component)
			if err != nil {
				return handler.Handle(err)
			}
			if len(files) == 0 {
				fmt.Println(theme.DefaultTheme.Muted.Render("No log files found under .loam/logs."))
				return nil
			}

			if follow {
				return followFiles(files)
			}
			return printTails(files, tailLines)
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Stream new log lines as they are written")
	cmd.Flags().IntVar(&tailLines, "tail", 50, "Number of trailing lines to show per file")
	cmd.Flags().StringVar(&component, "component", "", "Only show logs for this component")
	return cmd
}

// logFiles lists the site's log files, newest date last so the stream
// reads chronologically.
func logFiles(component string) ([]string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	pattern := "*.log"
	if component != "" {
		pattern = component + "-*.log"
	}

	files, err := filepath.Glob(filepath.Join(cwd, ".loam", "logs", pattern))
	if err != nil {
		return nil, err
	}
	return files, nil
}

// printTails prints the last n lines of each file with a per-file header.
func printTails(files []string, n int) error {
	t := theme.DefaultTheme
	for _, file := range files {
		lines, err := lastLines(file, n)
		if err != nil {
			continue
		}
		fmt.Println(t.Accent.Render("==> " + filepath.Base(file) + " <=="))
		for _, line := range lines {
			fmt.Println(line)
		}
	}
	return nil
}

func lastLines(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if len(lines) > n {
			lines = lines[1:]
		}
	}
	return lines, scanner.Err()
}

// followFiles streams every file into one merged output, prefixed with
// the component name when more than one file is tailed.
func followFiles(files []string) error {
	lineCh := make(chan string)

	for _, file := range files {
		prefix := ""
		if len(files) > 1 {
			prefix = componentPrefix(file)
		}

		go func(path, prefix string) {
			cfg := tail.Config{
				Follow:   true,
				ReOpen:   true,
				Location: &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
				Logger:   stdlog.New(io.Discard, "", 0),
			}
			t, err := tail.TailFile(path, cfg)
			if err != nil {
				return
			}
			for line := range t.Lines {
				if line.Err != nil {
					continue
				}
				lineCh <- prefix + line.Text
			}
		}(file, prefix)
	}

	for line := range lineCh {
		fmt.Println(line)
	}
	return nil
}

// componentPrefix derives a "[component] " prefix from a log file name
// like content-watcher-2026-08-30.log.
func componentPrefix(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".log")
	// Strip the trailing -YYYY-MM-DD date segment.
	parts := strings.Split(name, "-")
	if len(parts) > 3 {
		name = strings.Join(parts[:len(parts)-3], "-")
	}
	return theme.DefaultTheme.Accent.Render("[" + name + "] ")
}
