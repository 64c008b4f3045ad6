package pathutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpand_Tilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := Expand("~/logs/site.log")
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if got != filepath.Join(home, "logs", "site.log") {
		t.Errorf("Expand(~/...) = %q", got)
	}
}

func TestExpand_EnvVar(t *testing.T) {
	t.Setenv("LOAM_TEST_DIR", "content")

	got, err := Expand("$LOAM_TEST_DIR/post.md")
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if !strings.HasSuffix(got, filepath.Join("content", "post.md")) {
		t.Errorf("Expand($VAR) = %q", got)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Expand() returned relative path %q", got)
	}
}
