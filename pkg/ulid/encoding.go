package ulid

import (
	"github.com/osvaldoandrade/ulid/pkg/crockford"
)

// AppendText appends the canonical string form to b.
func (id ULID) AppendText(b []byte) ([]byte, error) {
	return crockford.AppendUint64Pair(b, id.hi, id.lo, EncodedSize), nil
}

// MarshalText returns the canonical string form.
func (id ULID) MarshalText() ([]byte, error) {
	return id.AppendText(make([]byte, 0, EncodedSize))
}

// UnmarshalText parses the canonical string form.
func (id *ULID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// AppendBinary appends the 16 byte big-endian form to b.
func (id ULID) AppendBinary(b []byte) ([]byte, error) {
	raw := id.Bytes()
	return append(b, raw[:]...), nil
}

// MarshalBinary returns the 16 byte big-endian form.
func (id ULID) MarshalBinary() ([]byte, error) {
	return id.AppendBinary(make([]byte, 0, BinarySize))
}

// UnmarshalBinary decodes the 16 byte big-endian form.
func (id *ULID) UnmarshalBinary(data []byte) error {
	parsed, err := FromSlice(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
