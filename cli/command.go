package cli

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/loamtools/loam/config"
	"github.com/loamtools/loam/errors"
	"github.com/loamtools/loam/logging"
)

// CommandOptions holds the flags shared by all loam commands.
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a command with the standard loam flags.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to loam.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger creates a logger based on command flags.
func GetLogger(cmd *cobra.Command) *logrus.Logger {
	entry := logging.NewLogger("loam-cli")
	logger := entry.Logger

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

// GetOptions extracts the shared options from a command.
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// LoadSite resolves the site for a command: the optional positional
// argument selects the site root, the --config flag overrides config
// discovery, and a missing config falls back to defaults. Returns the
// configuration and the content directory resolved against the root.
func LoadSite(opts CommandOptions, args []string) (*config.Config, string, error) {
	root := "."
	if len(args) > 0 && args[0] != "" {
		root = args[0]
	}

	var cfg *config.Config
	var err error
	switch {
	case opts.ConfigFile != "":
		cfg, err = config.Load(opts.ConfigFile)
	default:
		start := root
		if start == "." {
			if cwd, wdErr := os.Getwd(); wdErr == nil {
				start = cwd
			}
		}
		cfg, err = config.LoadFrom(start)
		if err != nil && errors.Is(err, errors.ErrCodeConfigNotFound) {
			cfg = &config.Config{}
			cfg.SetDefaults()
			err = nil
		}
	}
	if err != nil {
		return nil, "", err
	}

	contentDir := cfg.Content.Dir
	if !filepath.IsAbs(contentDir) {
		contentDir = filepath.Join(root, contentDir)
	}
	return cfg, contentDir, nil
}
