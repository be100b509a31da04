package prettyreq

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestContentType(t *testing.T) {
	if ContentType != "application/json" {
		t.Errorf("ContentType = %q, want %q", ContentType, "application/json")
	}
}

func TestMarshal(t *testing.T) {
	type testStruct struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	original := testStruct{Name: "test", Value: 42}

	pretty, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	compact, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}

	if bytes.Equal(pretty, compact) {
		t.Error("pretty encoding should differ from compact for multi-field values")
	}
	if !strings.Contains(string(pretty), "\n") {
		t.Errorf("pretty encoding should contain newlines, got %q", pretty)
	}
	if !strings.Contains(string(pretty), "  \"name\"") {
		t.Errorf("pretty encoding should indent fields, got %q", pretty)
	}

	var restored testStruct
	if err := json.Unmarshal(pretty, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshalNil(t *testing.T) {
	data, err := Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null")
	}
}

// Empty composites have nothing to indent, so the pretty and compact
// renderings coincide. The inequality property only holds for values with
// two or more fields or elements.
func TestMarshalEmptyMap(t *testing.T) {
	pretty, err := Marshal(map[string]string{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	compact, err := json.Marshal(map[string]string{})
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}

	if !bytes.Equal(pretty, compact) {
		t.Errorf("empty map: pretty %q should equal compact %q", pretty, compact)
	}
	if string(pretty) != "{}" {
		t.Errorf("Marshal(empty map) = %q, want %q", pretty, "{}")
	}
}

func TestMarshalUnsupported(t *testing.T) {
	if _, err := Marshal(make(chan int)); err == nil {
		t.Error("Marshal(chan) should return an error")
	}
}
