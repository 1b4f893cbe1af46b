package ulid

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/osvaldoandrade/ulid/pkg/crockford"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "ulid.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(`CREATE TABLE ids (bin BLOB, txt TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func TestSQLRoundTrip(t *testing.T) {
	db := openTestDB(t)
	id := MustParse(sampleString)

	if _, err := db.Exec(`INSERT INTO ids (bin, txt) VALUES (?, ?)`, id, Text(id)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var (
		fromBin ULID
		fromTxt ULID
		rawTxt  string
		rawBin  []byte
	)
	row := db.QueryRow(`SELECT bin, txt, txt, bin FROM ids`)
	if err := row.Scan(&fromBin, (*Text)(&fromTxt), &rawTxt, &rawBin); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if fromBin != id || fromTxt != id {
		t.Fatalf("expected %v, got bin=%v txt=%v", id, fromBin, fromTxt)
	}
	if rawTxt != sampleString {
		t.Fatalf("expected text column %s, got %s", sampleString, rawTxt)
	}
	if len(rawBin) != BinarySize {
		t.Fatalf("expected %d byte blob, got %d", BinarySize, len(rawBin))
	}
}

func TestSQLNull(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Exec(`INSERT INTO ids (bin, txt) VALUES (NULL, NULL)`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	id := MustParse(sampleString)
	if err := db.QueryRow(`SELECT bin FROM ids`).Scan(&id); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !id.IsZero() {
		t.Fatalf("expected zero ULID for NULL, got %v", id)
	}
}

func TestScanValues(t *testing.T) {
	id := MustParse(sampleString)
	raw := id.Bytes()

	tests := []struct {
		name    string
		src     any
		want    ULID
		wantErr error
	}{
		{name: "string", src: sampleString, want: id},
		{name: "text bytes", src: []byte(sampleString), want: id},
		{name: "binary bytes", src: raw[:], want: id},
		{name: "nil", src: nil, want: ULID{}},
		{name: "bad string", src: "01ARZ3NDEKTSV4RRFFQ69G5FAU", wantErr: crockford.ErrInvalidChar},
	}

	for _, tt := range tests {
		var got ULID
		err := got.Scan(tt.src)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("%s: expected %v, got %v", tt.name, tt.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: Scan returned error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}

	var got ULID
	if err := got.Scan([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for short byte slice")
	}
	if err := got.Scan(42); err == nil {
		t.Fatalf("expected error for integer source")
	}
}

func TestValuers(t *testing.T) {
	id := MustParse(sampleString)

	v, err := id.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	b, ok := v.([]byte)
	if !ok || len(b) != BinarySize {
		t.Fatalf("expected 16 byte slice, got %#v", v)
	}

	v, err = Text(id).Value()
	if err != nil {
		t.Fatalf("Text.Value returned error: %v", err)
	}
	if s, ok := v.(string); !ok || s != sampleString {
		t.Fatalf("expected %s, got %#v", sampleString, v)
	}
}
