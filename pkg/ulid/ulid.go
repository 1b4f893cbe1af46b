// Package ulid implements Universally Unique Lexicographically Sortable
// Identifiers.
//
// A ULID is a 128-bit value: a 48-bit millisecond timestamp followed by 80
// bits of randomness. Its canonical form is a 26 character Crockford Base32
// string whose lexicographic order matches the numeric order of the value.
//
// The value is held as two uint64 halves so that ULID is comparable and can
// be used as a map key.
package ulid

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"time"

	"lukechampine.com/uint128"

	"github.com/osvaldoandrade/ulid/pkg/crockford"
)

const (
	// EncodedSize is the length of the canonical string form.
	EncodedSize = crockford.Uint128Digits

	// BinarySize is the length of the big-endian byte form.
	BinarySize = 16

	// TimestampBits is the width of the timestamp field.
	TimestampBits = 48

	// RandomBits is the width of the randomness field.
	RandomBits = 80

	// MaxTimestamp is the largest encodable millisecond timestamp.
	MaxTimestamp uint64 = 1<<TimestampBits - 1

	timestampDigits = 10
	randomHiMask    = 0xFFFF
)

// ULID is a 128-bit identifier. The zero value is the nil ULID
// 00000000000000000000000000.
type ULID struct {
	hi uint64
	lo uint64
}

// TimestampOverflowError is the panic value raised by New when the timestamp
// does not fit in 48 bits.
type TimestampOverflowError struct {
	Timestamp uint64
}

func (e *TimestampOverflowError) Error() string {
	return fmt.Sprintf("ulid: timestamp %d exceeds maximum %d", e.Timestamp, MaxTimestamp)
}

// New builds a ULID from a millisecond timestamp and 80 random bits drawn
// from src. It panics with *TimestampOverflowError if timestamp is greater
// than MaxTimestamp.
func New(timestamp uint64, src RandomSource) ULID {
	if timestamp > MaxTimestamp {
		panic(&TimestampOverflowError{Timestamp: timestamp})
	}
	return ULID{
		hi: timestamp<<16 | uint64(src.Uint16()),
		lo: src.Uint64(),
	}
}

// Make returns a ULID for the current time using the cryptographic source.
func Make() ULID {
	return New(SystemClock().UnixMilli(), CryptoSource())
}

// MakeString returns the canonical string of a fresh ULID.
func MakeString() string {
	return Make().String()
}

// MakeBytes returns the binary form of a fresh ULID.
func MakeBytes() [BinarySize]byte {
	return Make().Bytes()
}

// FromBytes decodes the 16 byte big-endian form.
func FromBytes(b [BinarySize]byte) ULID {
	return ULID{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// FromSlice decodes a big-endian byte slice. It returns
// crockford.ErrInvalidLength unless len(b) is BinarySize.
func FromSlice(b []byte) (ULID, error) {
	if len(b) != BinarySize {
		return ULID{}, crockford.ErrInvalidLength
	}
	return FromBytes([BinarySize]byte(b)), nil
}

// Parse decodes a canonical string. Lowercase input and the Crockford
// aliases are accepted. Errors are the crockford sentinels, unwrapped.
func Parse(s string) (ULID, error) {
	hi, lo, err := crockford.ParseUint64Pair(s)
	if err != nil {
		return ULID{}, err
	}
	return ULID{hi: hi, lo: lo}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) ULID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("ulid: parse %q: %v", s, err))
	}
	return id
}

// FromUint64Pair builds a ULID from the high and low halves of its value.
func FromUint64Pair(hi, lo uint64) ULID {
	return ULID{hi: hi, lo: lo}
}

// FromUint128 builds a ULID from a fixed-width 128-bit integer.
func FromUint128(v uint128.Uint128) ULID {
	return ULID{hi: v.Hi, lo: v.Lo}
}

var uint64Mask = new(big.Int).SetUint64(^uint64(0))

// FromBig converts a 128-bit integer. It returns
// crockford.ErrDataTypeOverflow for negative or wider values.
func FromBig(v *big.Int) (ULID, error) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return ULID{}, crockford.ErrDataTypeOverflow
	}
	lo := new(big.Int).And(v, uint64Mask).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	return ULID{hi: hi, lo: lo}, nil
}

// Timestamp returns the millisecond timestamp field.
func (id ULID) Timestamp() uint64 {
	return id.hi >> 16
}

// Time returns the timestamp field as a UTC time.
func (id ULID) Time() time.Time {
	return time.UnixMilli(int64(id.Timestamp())).UTC()
}

// Entropy returns the 80-bit randomness field as 10 big-endian bytes.
func (id ULID) Entropy() [10]byte {
	var out [10]byte
	binary.BigEndian.PutUint16(out[:2], uint16(id.hi&randomHiMask))
	binary.BigEndian.PutUint64(out[2:], id.lo)
	return out
}

// String returns the 26 character uppercase canonical form.
func (id ULID) String() string {
	var buf [EncodedSize]byte
	return string(crockford.AppendUint64Pair(buf[:0], id.hi, id.lo, EncodedSize))
}

// Bytes returns the 16 byte big-endian form.
func (id ULID) Bytes() [BinarySize]byte {
	var out [BinarySize]byte
	binary.BigEndian.PutUint64(out[:8], id.hi)
	binary.BigEndian.PutUint64(out[8:], id.lo)
	return out
}

// Uint64Pair returns the high and low halves of the value.
func (id ULID) Uint64Pair() (hi, lo uint64) {
	return id.hi, id.lo
}

// Uint128 returns the value as a fixed-width 128-bit integer.
func (id ULID) Uint128() uint128.Uint128 {
	return uint128.New(id.lo, id.hi)
}

// Big returns the value as a non-negative 128-bit integer.
func (id ULID) Big() *big.Int {
	v := new(big.Int).SetUint64(id.hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(id.lo))
}

// Increment adds one to the randomness field. On overflow the field wraps to
// zero; the timestamp is never modified.
func (id ULID) Increment() ULID {
	lo := id.lo + 1
	randHi := id.hi & randomHiMask
	if lo == 0 {
		randHi = (randHi + 1) & randomHiMask
	}
	return ULID{hi: id.hi&^randomHiMask | randHi, lo: lo}
}

// Compare returns -1, 0 or +1 ordering id against other as unsigned 128-bit
// integers.
func (id ULID) Compare(other ULID) int {
	switch {
	case id.hi < other.hi:
		return -1
	case id.hi > other.hi:
		return 1
	case id.lo < other.lo:
		return -1
	case id.lo > other.lo:
		return 1
	}
	return 0
}

// IsZero reports whether id is the nil ULID.
func (id ULID) IsZero() bool {
	return id.hi == 0 && id.lo == 0
}
