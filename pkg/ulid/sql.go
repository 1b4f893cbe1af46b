package ulid

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements sql.Scanner. It accepts NULL, the canonical string and
// both the 16 byte binary and 26 byte text encodings as []byte.
func (id *ULID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ULID{}
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		switch len(v) {
		case BinarySize:
			return id.UnmarshalBinary(v)
		case EncodedSize:
			return id.UnmarshalText(v)
		}
		return fmt.Errorf("scan ulid: unexpected length %d", len(v))
	default:
		return fmt.Errorf("scan ulid: unsupported type %T", src)
	}
}

// Value implements driver.Valuer with the 16 byte binary form.
func (id ULID) Value() (driver.Value, error) {
	return id.MarshalBinary()
}

// Text stores a ULID in text columns.
type Text ULID

// Value implements driver.Valuer with the canonical string form.
func (t Text) Value() (driver.Value, error) {
	return ULID(t).String(), nil
}

// Scan implements sql.Scanner for text columns.
func (t *Text) Scan(src any) error {
	return (*ULID)(t).Scan(src)
}
