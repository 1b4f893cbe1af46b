package ulid

import (
	"errors"
	"fmt"
	"sync"
)

// ErrSequenceExhausted is returned by Generator.NextStrict when no ULID
// greater than the previous one can be produced for the current clock
// reading.
var ErrSequenceExhausted = errors.New("ulid sequence exhausted")

// Generator produces monotonic ULIDs from a clock and a random source. It
// is safe for concurrent use.
type Generator struct {
	mu     sync.Mutex
	clock  Clock
	source RandomSource
	prev   ULID
	// started is false until the first value is produced.
	started bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces the system clock.
func WithClock(clock Clock) Option {
	return func(g *Generator) {
		if clock != nil {
			g.clock = clock
		}
	}
}

// WithSource replaces the cryptographic random source. Sources that are not
// safe for concurrent use are fine here; the Generator serializes access.
func WithSource(src RandomSource) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// NewGenerator returns a Generator reading the system clock and the
// cryptographic source unless options replace them.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		clock:  SystemClock(),
		source: CryptoSource(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns the monotonic successor of the last generated ULID.
func (g *Generator) Next() ULID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := g.clock.UnixMilli()
	if !g.started {
		g.prev = New(ts, g.source)
		g.started = true
		return g.prev
	}
	g.prev = NextMonotonic(g.prev, ts, g.source)
	return g.prev
}

// NextStrict returns a ULID strictly greater than the last generated one or
// ErrSequenceExhausted. The previous value is kept on failure.
func (g *Generator) NextStrict() (ULID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := g.clock.UnixMilli()
	if !g.started {
		g.prev = New(ts, g.source)
		g.started = true
		return g.prev, nil
	}
	next, ok := NextStrictlyMonotonic(g.prev, ts, g.source)
	if !ok {
		return ULID{}, ErrSequenceExhausted
	}
	g.prev = next
	return next, nil
}

// NewID returns the canonical string of the next strictly increasing ULID.
func (g *Generator) NewID() (string, error) {
	id, err := g.NextStrict()
	if err != nil {
		return "", fmt.Errorf("generate ulid: %w", err)
	}
	return id.String(), nil
}
