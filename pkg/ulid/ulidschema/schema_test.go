package ulidschema

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

func TestSchemaDocument(t *testing.T) {
	out, err := Marshal()
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if doc["type"] != "string" || doc["format"] != "ulid" {
		t.Fatalf("unexpected type/format: %v %v", doc["type"], doc["format"])
	}
	if doc["title"] != "[ULID](https://github.com/ulid/spec)" {
		t.Fatalf("unexpected title %v", doc["title"])
	}
	examples, ok := doc["examples"].([]any)
	if !ok || len(examples) != 2 || examples[0] != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Fatalf("unexpected examples %v", doc["examples"])
	}
	if !strings.Contains(string(out), "\n  \"title\"") {
		t.Fatalf("expected indented output, got %s", out)
	}
}

func TestCanonicalSortsKeys(t *testing.T) {
	out, err := Canonical()
	if err != nil {
		t.Fatalf("Canonical returned error: %v", err)
	}
	if !strings.HasPrefix(string(out), `{"$schema":`) {
		t.Fatalf("unexpected canonical prefix: %s", out)
	}
	if strings.Index(string(out), `"description"`) > strings.Index(string(out), `"examples"`) {
		t.Fatalf("expected sorted keys, got %s", out)
	}
	if strings.Contains(string(out), "\n") {
		t.Fatalf("expected compact output, got %s", out)
	}
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "canonical", input: `"01ARZ3NDEKTSV4RRFFQ69G5FAV"`, valid: true},
		{name: "lowercase", input: `"01arz3ndektsv4rrffq69g5fav"`, valid: true},
		{name: "second example", input: `"01BX5ZZKBKACTAV9WEVGEMMVS0"`, valid: true},
		{name: "invalid char", input: `"01ARZ3NDEKTSV4RRFFQ69G5FAU"`, valid: false},
		{name: "overflow", input: `"80000000000000000000000000"`, valid: false},
		{name: "short", input: `"foo"`, valid: false},
		{name: "number", input: `42`, valid: false},
	}

	for _, tt := range tests {
		err := ValidateJSON([]byte(tt.input))
		if tt.valid && err != nil {
			t.Fatalf("%s: expected valid, got %v", tt.name, err)
		}
		if !tt.valid {
			if err == nil {
				t.Fatalf("%s: expected validation error", tt.name)
			}
			var validationErr *jsonschema.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("%s: expected ValidationError, got %v", tt.name, err)
			}
		}
	}
}

func TestValidateJSONRejectsMalformedInput(t *testing.T) {
	if err := ValidateJSON([]byte(`{`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestCompileIsRepeatable(t *testing.T) {
	first, err := Compile()
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	second, err := Compile()
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if err := first.Validate("01ARZ3NDEKTSV4RRFFQ69G5FAV"); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if err := second.Validate("nope"); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestFormatCheckerIgnoresNonStrings(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{value: "01ARZ3NDEKTSV4RRFFQ69G5FAV", want: true},
		{value: "01ARZ3NDEKTSV4RRFFQ69G5FAU", want: false},
		{value: 42, want: true},
		{value: nil, want: true},
	}
	for _, tt := range tests {
		if got := isULID(tt.value); got != tt.want {
			t.Fatalf("isULID(%v): expected %v, got %v", tt.value, tt.want, got)
		}
	}
}
