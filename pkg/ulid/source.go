package ulid

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"time"
)

// RandomSource supplies the randomness field of new ULIDs.
type RandomSource interface {
	Uint16() uint16
	Uint64() uint64
}

// Clock supplies millisecond timestamps.
type Clock interface {
	UnixMilli() uint64
}

type cryptoSource struct{}

// CryptoSource returns a RandomSource backed by crypto/rand. It is safe for
// concurrent use.
func CryptoSource() RandomSource {
	return cryptoSource{}
}

func (cryptoSource) Uint16() uint16 {
	var b [2]byte
	// crypto/rand.Read never returns an error.
	_, _ = rand.Read(b[:])
	return binary.BigEndian.Uint16(b[:])
}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return binary.BigEndian.Uint64(b[:])
}

type seededSource struct {
	rng *mrand.Rand
}

// NewSeededSource returns a deterministic PCG-backed RandomSource. It is not
// safe for concurrent use.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

func (s *seededSource) Uint16() uint16 {
	return uint16(s.rng.Uint32())
}

func (s *seededSource) Uint64() uint64 {
	return s.rng.Uint64()
}

type systemClock struct{}

func (systemClock) UnixMilli() uint64 {
	ms := time.Now().UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock always reports the same timestamp.
type FixedClock uint64

func (c FixedClock) UnixMilli() uint64 {
	return uint64(c)
}

// TimeClock adapts a function returning time.Time, such as time.Now.
type TimeClock func() time.Time

func (c TimeClock) UnixMilli() uint64 {
	ms := c().UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}
