// Package ulidpb carries ULIDs in protobuf well-known wrapper messages.
//
// The binary form travels as google.protobuf.BytesValue and the canonical
// string form as google.protobuf.StringValue.
package ulidpb

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/osvaldoandrade/ulid/pkg/ulid"
)

// ErrNilMessage is returned when decoding a nil wrapper.
var ErrNilMessage = errors.New("nil ulid message")

// ToBytesValue wraps the 16 byte form.
func ToBytesValue(id ulid.ULID) *wrapperspb.BytesValue {
	raw := id.Bytes()
	return wrapperspb.Bytes(raw[:])
}

// FromBytesValue unwraps the 16 byte form. Lengths other than 16 report
// crockford.ErrInvalidLength.
func FromBytesValue(msg *wrapperspb.BytesValue) (ulid.ULID, error) {
	if msg == nil {
		return ulid.ULID{}, ErrNilMessage
	}
	return ulid.FromSlice(msg.GetValue())
}

// ToStringValue wraps the canonical string form.
func ToStringValue(id ulid.ULID) *wrapperspb.StringValue {
	return wrapperspb.String(id.String())
}

// FromStringValue parses the wrapped string. Decoding errors are returned
// unchanged.
func FromStringValue(msg *wrapperspb.StringValue) (ulid.ULID, error) {
	if msg == nil {
		return ulid.ULID{}, ErrNilMessage
	}
	return ulid.Parse(msg.GetValue())
}

// Marshal encodes id as a deterministic BytesValue wire message.
func Marshal(id ulid.ULID) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(ToBytesValue(id))
}

// Unmarshal decodes a BytesValue wire message produced by Marshal.
func Unmarshal(data []byte) (ulid.ULID, error) {
	var msg wrapperspb.BytesValue
	if err := proto.Unmarshal(data, &msg); err != nil {
		return ulid.ULID{}, fmt.Errorf("decode ulid message: %w", err)
	}
	return FromBytesValue(&msg)
}
