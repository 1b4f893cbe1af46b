// Package ulidschema describes ULID strings as a JSON schema and validates
// documents against it.
package ulidschema

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/osvaldoandrade/ulid/pkg/ulid"
)

const (
	// Format is the JSON schema format name asserted for ULID strings.
	Format = "ulid"

	draft07     = "http://json-schema.org/draft-07/schema#"
	resourceURL = "ulid.schema.json"
)

// Document is the JSON schema of a canonical ULID string.
type Document struct {
	Schema      string   `json:"$schema"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Type        string   `json:"type"`
	Format      string   `json:"format"`
}

// Schema returns the schema document.
func Schema() Document {
	return Document{
		Schema:      draft07,
		Title:       "[ULID](https://github.com/ulid/spec)",
		Description: "[Universally Unique Lexicographically Sortable Identifier](https://github.com/ulid/spec)",
		Examples:    []string{"01ARZ3NDEKTSV4RRFFQ69G5FAV", "01BX5ZZKBKACTAV9WEVGEMMVS0"},
		Type:        "string",
		Format:      Format,
	}
}

// Marshal encodes the schema document as indented JSON.
func Marshal() ([]byte, error) {
	out, err := json.Marshal(Schema(), jsontext.WithIndent("  "))
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}
	return out, nil
}

// Canonical encodes the schema document in RFC 8785 canonical form.
func Canonical() ([]byte, error) {
	out, err := json.Marshal(Schema())
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}
	value := jsontext.Value(out)
	if err := value.Canonicalize(); err != nil {
		return nil, fmt.Errorf("canonicalize schema: %w", err)
	}
	return []byte(value), nil
}

var registerFormat sync.Once

func isULID(v any) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	_, err := ulid.Parse(s)
	return err == nil
}

// Compile returns a validator for the schema with the ulid format asserted.
func Compile() (*jsonschema.Schema, error) {
	registerFormat.Do(func() {
		jsonschema.Formats[Format] = isULID
	})

	doc, err := json.Marshal(Schema())
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	compiler.AssertFormat = true
	if err := compiler.AddResource(resourceURL, bytes.NewReader(doc)); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	compiled, err := compiler.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return compiled, nil
}

var compiled = sync.OnceValues(Compile)

// ValidateJSON checks that data is a JSON string holding a valid ULID.
func ValidateJSON(data []byte) error {
	schema, err := compiled()
	if err != nil {
		return err
	}

	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("validate ulid: %w", err)
	}
	return nil
}
