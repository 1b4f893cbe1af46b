package ulidinterop

import (
	crand "crypto/rand"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	oklog "github.com/oklog/ulid/v2"

	"github.com/osvaldoandrade/ulid/pkg/ulid"
)

const sample = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

func TestOklogAgreesOnRandomValues(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 5000; i++ {
		id := ulid.FromUint64Pair(rng.Uint64()>>1, rng.Uint64())
		theirs := ToOklog(id)

		if theirs.String() != id.String() {
			t.Fatalf("string mismatch: oklog %s, ours %s", theirs, id)
		}
		if theirs.Time() != id.Timestamp() {
			t.Fatalf("timestamp mismatch: oklog %d, ours %d", theirs.Time(), id.Timestamp())
		}
		if FromOklog(theirs) != id {
			t.Fatalf("round trip mismatch for %s", id)
		}

		parsed, err := oklog.ParseStrict(id.String())
		if err != nil {
			t.Fatalf("oklog rejected %s: %v", id, err)
		}
		if FromOklog(parsed) != id {
			t.Fatalf("oklog parsed %s differently", id)
		}
	}
}

func TestOklogGeneratedValuesParse(t *testing.T) {
	entropy := oklog.Monotonic(crand.Reader, 0)
	prev := ulid.ULID{}
	for i := 0; i < 1000; i++ {
		theirs := oklog.MustNew(oklog.Timestamp(time.Now()), entropy)
		ours, err := ulid.Parse(theirs.String())
		if err != nil {
			t.Fatalf("Parse(%s) returned error: %v", theirs, err)
		}
		if ours != FromOklog(theirs) {
			t.Fatalf("parse mismatch for %s", theirs)
		}
		if ours.Compare(prev) <= 0 {
			t.Fatalf("expected increasing sequence, got %s after %s", ours, prev)
		}
		prev = ours
	}
}

func TestUUID(t *testing.T) {
	id := ulid.MustParse(sample)
	u := ToUUID(id)
	if u != uuid.UUID(id.Bytes()) {
		t.Fatalf("unexpected UUID %s", u)
	}
	if FromUUID(u) != id {
		t.Fatalf("round trip mismatch")
	}

	parsed, err := uuid.Parse(u.String())
	if err != nil {
		t.Fatalf("uuid.Parse returned error: %v", err)
	}
	if FromUUID(parsed) != id {
		t.Fatalf("string round trip mismatch")
	}
}

func TestPgUUID(t *testing.T) {
	id := ulid.MustParse(sample)
	pg := ToPgUUID(id)
	if !pg.Valid {
		t.Fatalf("expected valid pg UUID")
	}
	got, err := FromPgUUID(pg)
	if err != nil {
		t.Fatalf("FromPgUUID returned error: %v", err)
	}
	if got != id {
		t.Fatalf("expected %v, got %v", id, got)
	}

	var scanned pgtype.UUID
	if err := scanned.Scan(ToUUID(id).String()); err != nil {
		t.Fatalf("pgtype scan returned error: %v", err)
	}
	if got, err := FromPgUUID(scanned); err != nil || got != id {
		t.Fatalf("expected %v from scanned UUID, got %v (%v)", id, got, err)
	}

	if _, err := FromPgUUID(pgtype.UUID{}); !errors.Is(err, ErrNull) {
		t.Fatalf("expected ErrNull, got %v", err)
	}
}
