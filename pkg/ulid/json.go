package ulid

import (
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSONTo writes the canonical string form as a JSON string.
func (id ULID) MarshalJSONTo(enc *jsontext.Encoder) error {
	return enc.WriteToken(jsontext.String(id.String()))
}

// UnmarshalJSONFrom reads a JSON string. A JSON null leaves id unchanged.
func (id *ULID) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}
	switch tok.Kind() {
	case 'n':
		return nil
	case '"':
		return id.UnmarshalText([]byte(tok.String()))
	default:
		return fmt.Errorf("decode ulid: expected JSON string, got %v", tok.Kind())
	}
}
