package ulid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML emits the canonical string form.
func (id ULID) MarshalYAML() (any, error) {
	return id.String(), nil
}

// UnmarshalYAML accepts a scalar node holding the canonical string form.
func (id *ULID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("decode ulid: line %d: expected scalar", node.Line)
	}
	return id.UnmarshalText([]byte(node.Value))
}
