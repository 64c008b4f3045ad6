package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loamtools/loam/config"
)

const defaultThemeName = "kanagawa"

// --- Kanagawa Dragon (dark) palette ---
const (
	kanagawaGreen              = "#98BB6C"
	kanagawaYellow             = "#FF9E3B"
	kanagawaRed                = "#FF5D62"
	kanagawaOrange             = "#FFA066"
	kanagawaCyan               = "#7E9CD8"
	kanagawaBlue               = "#7FB4CA"
	kanagawaViolet             = "#957FB8"
	kanagawaLightText          = "#DCD7BA"
	kanagawaMutedText          = "#727169"
	kanagawaBorder             = "#363646"
	kanagawaSelectedBackground = "#223249"
	kanagawaSubtleBackground   = "#1F1F28"
)

// --- Gruvbox (dark) palette ---
const (
	gruvboxGreen              = "#B8BB26"
	gruvboxYellow             = "#FABD2F"
	gruvboxRed                = "#FB4934"
	gruvboxOrange             = "#FE8019"
	gruvboxCyan               = "#83A598"
	gruvboxBlue               = "#458588"
	gruvboxViolet             = "#B16286"
	gruvboxLightText          = "#EBDBB2"
	gruvboxMutedText          = "#BDAE93"
	gruvboxBorder             = "#504945"
	gruvboxSelectedBackground = "#32302F"
	gruvboxSubtleBackground   = "#282828"
)

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen              = "2"
	terminalYellow             = "3"
	terminalRed                = "1"
	terminalOrange             = "208"
	terminalCyan               = "6"
	terminalBlue               = "4"
	terminalViolet             = "5"
	terminalLightText          = "7"
	terminalMutedText          = "8"
	terminalBorder             = "8"
	terminalSelectedBackground = "8"
	terminalSubtleBackground   = "0"
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// DefaultColors exposes the active color palette selected for the current terminal.
var DefaultColors Colors

// Theme holds all the pre-configured styles used across the loam TUI.
type Theme struct {
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles - visual hierarchy
	Bold     lipgloss.Style
	Italic   lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	// Accents
	Highlight lipgloss.Style
	Accent    lipgloss.Style

	// Containers
	Box         lipgloss.Style
	TableHeader lipgloss.Style
	TableBorder lipgloss.Style
}

func newKanagawaColors() Colors {
	return Colors{
		Green:              lipgloss.Color(kanagawaGreen),
		Yellow:             lipgloss.Color(kanagawaYellow),
		Red:                lipgloss.Color(kanagawaRed),
		Orange:             lipgloss.Color(kanagawaOrange),
		Cyan:               lipgloss.Color(kanagawaCyan),
		Blue:               lipgloss.Color(kanagawaBlue),
		Violet:             lipgloss.Color(kanagawaViolet),
		LightText:          lipgloss.Color(kanagawaLightText),
		MutedText:          lipgloss.Color(kanagawaMutedText),
		Border:             lipgloss.Color(kanagawaBorder),
		SelectedBackground: lipgloss.Color(kanagawaSelectedBackground),
		SubtleBackground:   lipgloss.Color(kanagawaSubtleBackground),
	}
}

func newGruvboxColors() Colors {
	return Colors{
		Green:              lipgloss.Color(gruvboxGreen),
		Yellow:             lipgloss.Color(gruvboxYellow),
		Red:                lipgloss.Color(gruvboxRed),
		Orange:             lipgloss.Color(gruvboxOrange),
		Cyan:               lipgloss.Color(gruvboxCyan),
		Blue:               lipgloss.Color(gruvboxBlue),
		Violet:             lipgloss.Color(gruvboxViolet),
		LightText:          lipgloss.Color(gruvboxLightText),
		MutedText:          lipgloss.Color(gruvboxMutedText),
		Border:             lipgloss.Color(gruvboxBorder),
		SelectedBackground: lipgloss.Color(gruvboxSelectedBackground),
		SubtleBackground:   lipgloss.Color(gruvboxSubtleBackground),
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color(terminalGreen),
		Yellow:             lipgloss.Color(terminalYellow),
		Red:                lipgloss.Color(terminalRed),
		Orange:             lipgloss.Color(terminalOrange),
		Cyan:               lipgloss.Color(terminalCyan),
		Blue:               lipgloss.Color(terminalBlue),
		Violet:             lipgloss.Color(terminalViolet),
		LightText:          lipgloss.Color(terminalLightText),
		MutedText:          lipgloss.Color(terminalMutedText),
		Border:             lipgloss.Color(terminalBorder),
		SelectedBackground: lipgloss.Color(terminalSelectedBackground),
		SubtleBackground:   lipgloss.Color(terminalSubtleBackground),
	}
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"gruvbox":  newGruvboxColors,
	"terminal": newTerminalColors,
}

var themeAliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"ansi":            "terminal",
}

// DefaultTheme is the default theme instance for the loam TUI.
var DefaultTheme = initDefaultTheme()

// NewTheme creates a theme based on the configured theme selection.
func NewTheme() *Theme {
	return newThemeFromName(getThemeName())
}

// NewThemeWithName constructs a theme from a specific palette name.
func NewThemeWithName(name string) *Theme {
	return newThemeFromName(name)
}

// RenderStatus renders text with the appropriate status style.
func RenderStatus(status, text string) string {
	switch status {
	case "success":
		return DefaultTheme.Success.Render(text)
	case "error":
		return DefaultTheme.Error.Render(text)
	case "warning":
		return DefaultTheme.Warning.Render(text)
	case "info":
		return DefaultTheme.Info.Render(text)
	default:
		return text
	}
}

func initDefaultTheme() *Theme {
	themeName := getThemeName()
	colors := resolveThemeColors(themeName)
	DefaultColors = colors
	return newThemeFromColors(colors)
}

func newThemeFromName(name string) *Theme {
	return newThemeFromColors(resolveThemeColors(name))
}

func newThemeFromColors(colors Colors) *Theme {
	return &Theme{
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			MarginBottom(1),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Italic: lipgloss.NewStyle().
			Italic(true),

		Normal: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Faint(true),

		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(1, 2).
			Margin(1, 0),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colors.Border),

		TableBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border),
	}
}

func resolveThemeColors(name string) Colors {
	factory, ok := themeRegistry[normalizeThemeName(name)]
	if !ok {
		factory = themeRegistry[defaultThemeName]
	}
	return factory()
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := themeAliases[normalized]; ok {
		return alias
	}
	return normalized
}

func getThemeName() string {
	if env := os.Getenv("LOAM_THEME"); env != "" {
		return env
	}
	if cfg, err := config.LoadDefault(); err == nil && cfg.TUI.Theme != "" {
		return cfg.TUI.Theme
	}
	return defaultThemeName
}
