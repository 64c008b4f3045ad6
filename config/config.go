package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/loamtools/loam/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames lists the recognized configuration file names, in precedence order.
var configNames = []string{
	"loam.yml",
	"loam.yaml",
	".loam.yml",
	".loam.yaml",
	"loam.toml",
}

// Load reads and parses a loam configuration file. TOML files are
// detected by extension; everything else is parsed as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	if strings.HasSuffix(path, ".toml") {
		return loadTOML(data)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses YAML configuration data, expands environment
// variables, applies defaults, and validates the result.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
	}

	config.SetDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func loadTOML(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var config Config
	if err := toml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
	}

	config.SetDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadDefault finds and loads the configuration starting from the
// current working directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom finds and loads the configuration starting from the given directory.
func LoadFrom(startDir string) (*Config, error) {
	path, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// FindConfigFile searches for loam configuration files with the following precedence:
// 1. Start directory up to filesystem root
// 2. XDG config directory (~/.config/loam/loam.yml)
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if xdgConfigPath := getXDGConfigPath(); xdgConfigPath != "" {
		if info, err := os.Stat(xdgConfigPath); err == nil && !info.IsDir() {
			return xdgConfigPath, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// getXDGConfigPath returns the XDG config location for the global loam config.
func getXDGConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "loam", "loam.yml")
}

// expandEnvVars replaces ${VAR} with environment variable values.
// Supports default values with the ${VAR:-default} form.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return defaultValue
	})
}
