// Package ulidinterop converts ULIDs to and from the identifier types of
// other libraries. Every conversion preserves the 16 byte big-endian form.
package ulidinterop

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	oklog "github.com/oklog/ulid/v2"

	"github.com/osvaldoandrade/ulid/pkg/ulid"
)

// ErrNull is returned when converting a NULL database value.
var ErrNull = errors.New("ulid value is null")

// ToOklog converts to github.com/oklog/ulid/v2.
func ToOklog(id ulid.ULID) oklog.ULID {
	return oklog.ULID(id.Bytes())
}

// FromOklog converts from github.com/oklog/ulid/v2.
func FromOklog(id oklog.ULID) ulid.ULID {
	return ulid.FromBytes(id)
}

// ToUUID reinterprets the ULID bytes as a UUID. The result carries no
// RFC 4122 version or variant bits.
func ToUUID(id ulid.ULID) uuid.UUID {
	return uuid.UUID(id.Bytes())
}

// FromUUID reinterprets UUID bytes as a ULID.
func FromUUID(u uuid.UUID) ulid.ULID {
	return ulid.FromBytes(u)
}

// ToPgUUID converts to a valid pgx UUID for PostgreSQL uuid columns.
func ToPgUUID(id ulid.ULID) pgtype.UUID {
	return pgtype.UUID{Bytes: id.Bytes(), Valid: true}
}

// FromPgUUID converts a pgx UUID, returning ErrNull for SQL NULL.
func FromPgUUID(u pgtype.UUID) (ulid.ULID, error) {
	if !u.Valid {
		return ulid.ULID{}, ErrNull
	}
	return ulid.FromBytes(u.Bytes), nil
}
