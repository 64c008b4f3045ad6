package theme

import (
	"os"

	"github.com/loamtools/loam/config"
)

// Nerd Font Icons (Private Constants)
const (
	nerdIconSite      = ""  // fa-leaf (U+F06C)
	nerdIconHome      = "󰋜" // md-home (U+F02DC)
	nerdIconPost      = "󰎚" // md-note (U+F039A)
	nerdIconPage      = "󰈙" // md-file_document (U+F0219)
	nerdIconTag       = "󰓹" // md-tag (U+F04F9)
	nerdIconAbout     = "󰋼" // md-information (U+F02FC)
	nerdIconContact   = "󰇮" // md-email (U+F01EE)
	nerdIconArchive   = "󰀼" // md-archive (U+F003C)
	nerdIconRss       = ""  // fa-rss (U+F09E)
	nerdIconSuccess   = "󰄬" // md-check (U+F012C)
	nerdIconError     = ""  // cod-error (U+EA87)
	nerdIconWarning   = ""  // fa-warning (U+F071)
	nerdIconInfo      = "󰋼" // md-information (U+F02FC)
	nerdIconBullet    = ""  // oct-dot_fill (U+F444)
	nerdIconDraft     = "󰷈" // md-file_edit (U+F0DC8)
	nerdIconChevLeft  = ""  // fa-chevron_left (U+F053)
	nerdIconChevRight = ""  // fa-chevron_right (U+F054)
	nerdIconCalendar  = "󰃭" // md-calendar (U+F00ED)
	nerdIconAuthor    = "󰀄" // md-account (U+F0004)
)

// ASCII Fallback Icons (Private Constants)
const (
	asciiIconSite      = "*"
	asciiIconHome      = "~"
	asciiIconPost      = "#"
	asciiIconPage      = "="
	asciiIconTag       = "+"
	asciiIconAbout     = "i"
	asciiIconContact   = "@"
	asciiIconArchive   = "%"
	asciiIconRss       = "^"
	asciiIconSuccess   = "ok"
	asciiIconError     = "x"
	asciiIconWarning   = "!"
	asciiIconInfo      = "i"
	asciiIconBullet    = "*"
	asciiIconDraft     = "~"
	asciiIconChevLeft  = "<"
	asciiIconChevRight = ">"
	asciiIconCalendar  = "date"
	asciiIconAuthor    = "by"
)

var (
	IconSite      string
	IconHome      string
	IconPost      string
	IconPage      string
	IconTag       string
	IconAbout     string
	IconContact   string
	IconArchive   string
	IconRss       string
	IconSuccess   string
	IconError     string
	IconWarning   string
	IconInfo      string
	IconBullet    string
	IconDraft     string
	IconChevLeft  string
	IconChevRight string
	IconCalendar  string
	IconAuthor    string
)

// iconsByName maps the symbolic icon names used in loam.yml nav entries
// and post frontmatter to the active icon set.
var iconsByName map[string]string

// Icon resolves a symbolic icon name to a glyph. Unknown or empty names
// return the empty string so a missing icon renders as a blank slot
// rather than failing.
func Icon(name string) string {
	if glyph, ok := iconsByName[name]; ok {
		return glyph
	}
	return ""
}

// init function determines which icon set to use
func init() {
	useASCII := false

	// 1. Check environment variable first
	if os.Getenv("LOAM_ICONS") == "ascii" {
		useASCII = true
	} else {
		// 2. Check config file
		cfg, err := config.LoadDefault()
		if err == nil && cfg.TUI.Icons == "ascii" {
			useASCII = true
		}
	}

	if useASCII {
		IconSite = asciiIconSite
		IconHome = asciiIconHome
		IconPost = asciiIconPost
		IconPage = asciiIconPage
		IconTag = asciiIconTag
		IconAbout = asciiIconAbout
		IconContact = asciiIconContact
		IconArchive = asciiIconArchive
		IconRss = asciiIconRss
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconWarning = asciiIconWarning
		IconInfo = asciiIconInfo
		IconBullet = asciiIconBullet
		IconDraft = asciiIconDraft
		IconChevLeft = asciiIconChevLeft
		IconChevRight = asciiIconChevRight
		IconCalendar = asciiIconCalendar
		IconAuthor = asciiIconAuthor
	} else {
		IconSite = nerdIconSite
		IconHome = nerdIconHome
		IconPost = nerdIconPost
		IconPage = nerdIconPage
		IconTag = nerdIconTag
		IconAbout = nerdIconAbout
		IconContact = nerdIconContact
		IconArchive = nerdIconArchive
		IconRss = nerdIconRss
		IconSuccess = nerdIconSuccess
		IconError = nerdIconError
		IconWarning = nerdIconWarning
		IconInfo = nerdIconInfo
		IconBullet = nerdIconBullet
		IconDraft = nerdIconDraft
		IconChevLeft = nerdIconChevLeft
		IconChevRight = nerdIconChevRight
		IconCalendar = nerdIconCalendar
		IconAuthor = nerdIconAuthor
	}

	iconsByName = map[string]string{
		"site":    IconSite,
		"leaf":    IconSite,
		"home":    IconHome,
		"post":    IconPost,
		"note":    IconPost,
		"page":    IconPage,
		"tag":     IconTag,
		"about":   IconAbout,
		"info":    IconInfo,
		"contact": IconContact,
		"email":   IconContact,
		"archive": IconArchive,
		"rss":     IconRss,
		"draft":   IconDraft,
	}
}
