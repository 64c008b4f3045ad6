package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestLoamError_Error(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad config")
	if got := err.Error(); got != "CONFIG_INVALID: bad config" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(fmt.Errorf("yaml: line 3"), ErrCodeConfigInvalid, "bad config")
	if !strings.Contains(wrapped.Error(), "caused by: yaml: line 3") {
		t.Errorf("wrapped Error() missing cause: %q", wrapped.Error())
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := ConfigNotFound("/tmp/loam.yml")
	if !Is(err, ErrCodeConfigNotFound) {
		t.Error("Is() = false, want true")
	}
	if Is(err, ErrCodePostNotFound) {
		t.Error("Is() matched wrong code")
	}
	if got := GetCode(err); got != ErrCodeConfigNotFound {
		t.Errorf("GetCode() = %v", got)
	}

	// Codes survive an extra layer of wrapping
	outer := fmt.Errorf("loading site: %w", err)
	if !Is(outer, ErrCodeConfigNotFound) {
		t.Error("Is() did not unwrap")
	}
}

func TestWithDetail(t *testing.T) {
	err := PostNotFound("hello-world")
	if err.Details["slug"] != "hello-world" {
		t.Errorf("Details[slug] = %v", err.Details["slug"])
	}

	err.WithDetail("dir", "content")
	if err.Details["dir"] != "content" {
		t.Errorf("Details[dir] = %v", err.Details["dir"])
	}

	if !strings.Contains(err.ToJSON(), `"POST_NOT_FOUND"`) {
		t.Errorf("ToJSON() missing code: %s", err.ToJSON())
	}
}

func TestGetCode_NilAndForeign(t *testing.T) {
	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should be empty")
	}
	if GetCode(fmt.Errorf("plain")) != "" {
		t.Error("GetCode(plain error) should be empty")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("Is(nil) should be false")
	}
}
