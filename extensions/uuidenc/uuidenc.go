// Package uuidenc gives UUIDs the strict-encoding capability contract.
// A UUID encodes as its 16 raw bytes, no prefix.
package uuidenc

import (
	"io"

	"github.com/google/uuid"

	"github.com/youkchan/strict-encoding/strict"
)

// UUID wraps google/uuid with the capability contract. It is comparable and
// therefore usable as a canonical map key.
type UUID uuid.UUID

// New returns a random (version 4) UUID.
func New() UUID {
	return UUID(uuid.New())
}

// Parse decodes the textual form.
func Parse(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	return UUID(u), err
}

func (u UUID) String() string {
	return uuid.UUID(u).String()
}

func (u UUID) StrictEncode(w io.Writer) (int, error) {
	return strict.WriteRaw(w, u[:])
}

func (u *UUID) StrictDecode(r io.Reader) error {
	return strict.ReadRaw(r, u[:])
}
