package crockford

import (
	"errors"
	"fmt"
)

// Decoding failures. These are the only recoverable errors returned by the
// codec; every Parse function reports exactly one of them.
var (
	// ErrInvalidLength reports input whose length does not match the width
	// required by the target integer.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidChar reports a character outside the Crockford alphabet and
	// its aliases. Returned errors are *InvalidCharError values carrying the
	// offending character; use errors.Is to match the kind.
	ErrInvalidChar = errors.New("invalid character")

	// ErrDataTypeOverflow reports a well-formed digit sequence that encodes
	// more bits than the target integer holds.
	ErrDataTypeOverflow = errors.New("data type overflow")
)

// InvalidCharError carries the character that failed to decode. A byte that
// is not valid UTF-8 is reported as its own value, so "\xff" yields
// Char 0xFF.
type InvalidCharError struct {
	Char rune
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("%s '%c'", ErrInvalidChar.Error(), e.Char)
}

// Is reports whether target is ErrInvalidChar.
func (e *InvalidCharError) Is(target error) bool {
	return target == ErrInvalidChar
}
