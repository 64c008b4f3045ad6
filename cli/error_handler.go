package cli

import (
	"fmt"
	"os"

	"github.com/loamtools/loam/errors"
)

// ErrorHandler turns loam errors into actionable messages on stderr.
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle prints a message tailored to the error code and returns the
// error unchanged so callers can still exit non-zero.
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ No loam.yml found. Create one in your site root to configure the site.\n")
		return err

	case errors.ErrCodeContentDirNotFound:
		if loamErr, ok := err.(*errors.LoamError); ok {
			fmt.Fprintf(os.Stderr, "❌ Content directory '%s' does not exist\n", loamErr.Details["dir"])
			fmt.Fprintf(os.Stderr, "Check content.dir in loam.yml or create the directory.\n")
		}
		return err

	case errors.ErrCodePostNotFound:
		if loamErr, ok := err.(*errors.LoamError); ok {
			fmt.Fprintf(os.Stderr, "❌ Post '%s' not found\n", loamErr.Details["slug"])
			fmt.Fprintf(os.Stderr, "Run 'loam posts' to list available posts.\n")
		}
		return err

	case errors.ErrCodeFrontmatterInvalid:
		if loamErr, ok := err.(*errors.LoamError); ok {
			fmt.Fprintf(os.Stderr, "❌ Malformed frontmatter in %s\n", loamErr.Details["path"])
			fmt.Fprintf(os.Stderr, "Run 'loam validate' to see all frontmatter problems.\n")
		}
		return err

	case errors.ErrCodeWatchFailed:
		fmt.Fprintf(os.Stderr, "❌ Could not watch the content directory for changes.\n")
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if loamErr, ok := err.(*errors.LoamError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", loamErr.ToJSON())
			}
		}
		return err
	}
}
