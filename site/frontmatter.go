package site

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// SplitFrontmatter separates a markdown document into its raw
// frontmatter block and body. A document without a leading '---' line
// has no frontmatter; the whole input is body.
func SplitFrontmatter(content string) (frontmatter, body string) {
	// Normalize CRLF so delimiter detection works on Windows-authored files.
	normalized := strings.ReplaceAll(content, "\r\n", "\n")

	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return "", content
	}

	rest := normalized[len(frontmatterDelimiter)+1:]
	end := closingDelimiter(rest)
	if end < 0 {
		// Unterminated frontmatter block; treat everything as body.
		return "", content
	}

	frontmatter = rest[:end]
	body = rest[end+1+len(frontmatterDelimiter):]
	// Skip the delimiter line's own newline, then at most one blank
	// separator line between the block and the body.
	body = strings.TrimPrefix(body, "\n")
	body = strings.TrimPrefix(body, "\n")
	return frontmatter, body
}

// closingDelimiter finds the offset of the first line that is exactly
// '---'. A line that merely starts with the delimiter, such as '----'
// or '---foo', does not terminate the block.
func closingDelimiter(rest string) int {
	for off := 0; ; {
		i := strings.Index(rest[off:], "\n"+frontmatterDelimiter)
		if i < 0 {
			return -1
		}
		pos := off + i
		after := pos + 1 + len(frontmatterDelimiter)
		if after == len(rest) || rest[after] == '\n' {
			return pos
		}
		off = pos + 1
	}
}

// ParseFrontmatter extracts post metadata from a markdown document.
// The body is always returned; a parse failure of the YAML block
// returns the error alongside zero-valued metadata so the caller can
// substitute fallbacks instead of dropping the post.
func ParseFrontmatter(content string) (PostMeta, string, error) {
	raw, body := SplitFrontmatter(content)
	if raw == "" {
		return PostMeta{}, body, nil
	}

	var meta PostMeta
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return PostMeta{}, body, err
	}
	return meta, body, nil
}
