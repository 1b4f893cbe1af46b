// Package crockford implements fixed-width Crockford Base32 encoding and
// decoding of unsigned integers.
//
// Digits are emitted most significant first, five bits per digit, using the
// alphabet 0-9 A-Z without I, L, O and U. Decoding is case-insensitive and
// accepts the aliases O→0 and I/L→1.
//
// 128-bit values are supported on three paths that produce identical
// digits: a fixed-width path over uint128.Uint128, a tuple path over a
// (hi, lo) pair of uint64 halves, and a convenience path over *big.Int.
package crockford

import (
	"math/big"
	"unicode/utf8"

	"lukechampine.com/uint128"
)

// Alphabet is the Crockford Base32 digit set indexed by digit value.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	// MaxUint64Digits is the longest input accepted by ParseUint64.
	MaxUint64Digits = 13

	// Uint128Digits is the exact input width for ParseBig and ParseUint64Pair.
	Uint128Digits = 26

	bitsPerDigit = 5
	digitMask    = 0x1F

	// A 13 digit string carries 65 bits, so its leading digit may use 4.
	maxLeadingUint64 = 0x0F
	// A 26 digit string carries 130 bits, so its leading digit may use 3.
	maxLeadingUint128 = 0x07

	invalid = 0xFF
)

// decoding maps a character code to its digit value. Entries holding
// invalid are not part of the alphabet or its aliases.
var decoding = [123]byte{
	// 0
	invalid, invalid, invalid, invalid, invalid, invalid, invalid, invalid,
	// 8
	invalid, invalid, invalid, invalid, invalid, invalid, invalid, invalid,
	// 16
	invalid, invalid, invalid, invalid, invalid, invalid, invalid, invalid,
	// 24
	invalid, invalid, invalid, invalid, invalid, invalid, invalid, invalid,
	// 32
	invalid, invalid, invalid, invalid, invalid, invalid, invalid, invalid,
	// 40
	invalid, invalid, invalid, invalid, invalid, invalid, invalid, invalid,
	// 48 '0'..'7'
	0, 1, 2, 3, 4, 5, 6, 7,
	// 56 '8' '9'
	8, 9, invalid, invalid, invalid, invalid, invalid, invalid,
	// 64 '@' 'A'..'G'
	invalid, 10, 11, 12, 13, 14, 15, 16,
	// 72 'H' 'I' 'J' 'K' 'L' 'M' 'N' 'O'
	17, 1, 18, 19, 1, 20, 21, 0,
	// 80 'P' 'Q' 'R' 'S' 'T' 'U' 'V' 'W'
	22, 23, 24, 25, 26, invalid, 27, 28,
	// 88 'X' 'Y' 'Z'
	29, 30, 31, invalid, invalid, invalid, invalid, invalid,
	// 96 '`' 'a'..'g'
	invalid, 10, 11, 12, 13, 14, 15, 16,
	// 104 'h' 'i' 'j' 'k' 'l' 'm' 'n' 'o'
	17, 1, 18, 19, 1, 20, 21, 0,
	// 112 'p' 'q' 'r' 's' 't' 'u' 'v' 'w'
	22, 23, 24, 25, 26, invalid, 27, 28,
	// 120 'x' 'y' 'z'
	29, 30, 31,
}

// Digit returns the value of a single Crockford character.
func Digit(r rune) (byte, error) {
	if r < 0 || int(r) >= len(decoding) || decoding[r] == invalid {
		return 0, &InvalidCharError{Char: r}
	}
	return decoding[r], nil
}

// AppendUint64 appends exactly count digits encoding the low count*5 bits of
// value. Positions above bit 63 are emitted as '0'.
func AppendUint64(dst []byte, value uint64, count int) []byte {
	checkCount(count)
	for i := 0; i < count; i++ {
		shift := (count - i - 1) * bitsPerDigit
		var digit uint64
		if shift < 64 {
			digit = (value >> uint(shift)) & digitMask
		}
		dst = append(dst, Alphabet[digit])
	}
	return dst
}

// AppendUint64Pair appends exactly count digits encoding the 128-bit value
// hi<<64 | lo. It produces the same digits as AppendBig for the same value.
func AppendUint64Pair(dst []byte, hi, lo uint64, count int) []byte {
	checkCount(count)
	for i := 0; i < count; i++ {
		shift := (count - i - 1) * bitsPerDigit
		dst = append(dst, Alphabet[pairDigit(hi, lo, shift)])
	}
	return dst
}

// pairDigit extracts the 5-bit group starting at bit shift of hi<<64 | lo.
func pairDigit(hi, lo uint64, shift int) uint64 {
	switch {
	case shift >= 128:
		return 0
	case shift >= 64:
		return (hi >> uint(shift-64)) & digitMask
	case shift+bitsPerDigit <= 64:
		return (lo >> uint(shift)) & digitMask
	default:
		// The group straddles the halves: the top bits of lo form its low
		// part and the bottom bits of hi its high part.
		return (lo>>uint(shift) | hi<<uint(64-shift)) & digitMask
	}
}

// AppendUint128 appends exactly count digits encoding the low count*5 bits
// of value. Positions above bit 127 are emitted as '0'.
func AppendUint128(dst []byte, value uint128.Uint128, count int) []byte {
	checkCount(count)
	for i := 0; i < count; i++ {
		shift := (count - i - 1) * bitsPerDigit
		var digit uint64
		if shift < 128 {
			digit = value.Rsh(uint(shift)).Lo & digitMask
		}
		dst = append(dst, Alphabet[digit])
	}
	return dst
}

// AppendBig appends exactly count digits encoding the low count*5 bits of a
// non-negative value.
func AppendBig(dst []byte, value *big.Int, count int) []byte {
	checkCount(count)
	if value.Sign() < 0 {
		panic("crockford: negative value")
	}
	bitLen := value.BitLen()
	for i := 0; i < count; i++ {
		shift := (count - i - 1) * bitsPerDigit
		var digit uint
		for b := 0; b < bitsPerDigit && shift+b < bitLen; b++ {
			digit |= value.Bit(shift+b) << uint(b)
		}
		dst = append(dst, Alphabet[digit])
	}
	return dst
}

// ParseUint64 decodes up to MaxUint64Digits characters. An empty string
// decodes to zero.
func ParseUint64(s string) (uint64, error) {
	if len(s) > MaxUint64Digits {
		return 0, ErrInvalidLength
	}

	var leadMax byte = digitMask
	if len(s) == MaxUint64Digits {
		leadMax = maxLeadingUint64
	}
	var result uint64
	err := decodeDigits(s, leadMax, func(value byte) {
		result = result<<bitsPerDigit | uint64(value)
	})
	if err != nil {
		return 0, err
	}
	return result, nil
}

// ParseUint128 decodes exactly Uint128Digits characters into a 128-bit
// value.
func ParseUint128(s string) (uint128.Uint128, error) {
	if len(s) != Uint128Digits {
		return uint128.Zero, ErrInvalidLength
	}

	var result uint128.Uint128
	err := decodeDigits(s, maxLeadingUint128, func(value byte) {
		result = result.Lsh(bitsPerDigit).Or64(uint64(value))
	})
	if err != nil {
		return uint128.Zero, err
	}
	return result, nil
}

// ParseUint64Pair decodes exactly Uint128Digits characters into the halves
// of a 128-bit value.
func ParseUint64Pair(s string) (hi, lo uint64, err error) {
	if len(s) != Uint128Digits {
		return 0, 0, ErrInvalidLength
	}

	err = decodeDigits(s, maxLeadingUint128, func(value byte) {
		hi = hi<<bitsPerDigit | lo>>(64-bitsPerDigit)
		lo = lo<<bitsPerDigit | uint64(value)
	})
	if err != nil {
		return 0, 0, err
	}
	return hi, lo, nil
}

// ParseBig decodes exactly Uint128Digits characters into a 128-bit value.
func ParseBig(s string) (*big.Int, error) {
	if len(s) != Uint128Digits {
		return nil, ErrInvalidLength
	}

	result := new(big.Int)
	var digit big.Int
	err := decodeDigits(s, maxLeadingUint128, func(value byte) {
		result.Lsh(result, bitsPerDigit)
		result.Or(result, digit.SetUint64(uint64(value)))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// decodeDigits passes the value of each character of s to push, left to
// right. The first failing character decides the error; the leading digit
// must not exceed leadMax.
func decodeDigits(s string, leadMax byte, push func(byte)) error {
	for i := 0; i < len(s); {
		r, size := nextChar(s[i:])
		value, err := Digit(r)
		if err != nil {
			return err
		}
		if i == 0 && value > leadMax {
			return ErrDataTypeOverflow
		}
		push(value)
		i += size
	}
	return nil
}

// nextChar decodes the first character of s. A byte that does not start a
// valid UTF-8 sequence is returned as its own value.
func nextChar(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return rune(s[0]), 1
	}
	return r, size
}

func checkCount(count int) {
	if count < 0 {
		panic("crockford: negative digit count")
	}
}
