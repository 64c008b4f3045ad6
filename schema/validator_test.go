package schema

import (
	"strings"
	"testing"
)

func TestValidator_ValidFrontmatter(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	data := map[string]interface{}{
		"title":  "Hello",
		"author": "Sam",
		"tags":   []string{"intro"},
		"draft":  false,
	}
	if err := v.Validate(data); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidator_MissingTitle(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	err = v.Validate(map[string]interface{}{"author": "Sam"})
	if err == nil {
		t.Fatal("expected validation error for missing title")
	}
	if !strings.Contains(err.Error(), "title") {
		t.Errorf("error should mention title: %v", err)
	}
}

func TestValidator_WrongType(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	err = v.Validate(map[string]interface{}{
		"title": "ok",
		"tags":  "not-an-array",
	})
	if err == nil {
		t.Fatal("expected validation error for tags type")
	}
}

func TestValidator_ExtraKeysAllowed(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	// Authors may carry extra metadata; the schema only constrains
	// the fields loam understands.
	err = v.Validate(map[string]interface{}{
		"title":  "ok",
		"series": "how-to",
	})
	if err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
