package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/golock/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	s1 := "github.com/a/b"
	s2 := "github.com/a/b"

	is1 := domain.NewInternedString(s1)
	is2 := domain.NewInternedString(s2)

	// Verify that the underlying handles are equal
	if is1.Value() != is2.Value() {
		t.Errorf("Expected handles to be equal for identical strings, got %v and %v", is1.Value(), is2.Value())
	}

	if is1.String() != s1 {
		t.Errorf("Expected String() to return %q, got %q", s1, is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString

	if zero.String() != "" {
		t.Errorf("Expected zero value to stringify to empty, got %q", zero.String())
	}
	if !zero.IsZero() {
		t.Error("Expected zero value to report IsZero")
	}
	if domain.NewInternedString("").IsZero() {
		t.Error("Expected an interned empty string not to be the zero value")
	}
}

func TestInternedStringJSON(t *testing.T) {
	type record struct {
		Name domain.InternedString `json:"name"`
	}

	original := record{Name: domain.NewInternedString("golang.org/x/mod")}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	expectedJSON := `{"name":"golang.org/x/mod"}`
	if string(data) != expectedJSON {
		t.Errorf("Expected JSON %q, got %q", expectedJSON, string(data))
	}

	var decoded record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if decoded.Name.String() != original.Name.String() {
		t.Errorf("Expected %q, got %q", original.Name.String(), decoded.Name.String())
	}
}
