package main

import (
	"os"

	"github.com/loamtools/loam/cli"
	"github.com/loamtools/loam/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"loam",
		"A terminal toolkit for content-managed markdown sites",
	)

	rootCmd.AddCommand(cmd.NewBrowseCmd())
	rootCmd.AddCommand(cmd.NewPostsCmd())
	rootCmd.AddCommand(cmd.NewValidateCmd())
	rootCmd.AddCommand(cmd.NewLogsCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("loam"))

	cli.ApplyStyledHelpRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
