package commit

import (
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"

	"github.com/youkchan/strict-encoding/strict"
)

// ID is a 32-byte commitment to a value: the BLAKE3-256 digest of its
// canonical encoding. IDs are themselves encodable, as raw bytes.
type ID [32]byte

// Commit returns the commitment ID of v. Because encoding is canonical,
// equal values always commit to the same ID.
func Commit(v strict.Encodable) (ID, error) {
	data, err := strict.Serialize(v)
	if err != nil {
		return ID{}, err
	}
	return ID(blake3.Sum256(data)), nil
}

// Verify reports whether v commits to id.
func Verify(v strict.Encodable, id ID) (bool, error) {
	got, err := Commit(v)
	if err != nil {
		return false, err
	}
	return got == id, nil
}

// Checksum returns a fast 64-bit integrity tag over v's canonical encoding.
// It is not collision resistant; use Commit for commitments.
func Checksum(v strict.Encodable) (uint64, error) {
	data, err := strict.Serialize(v)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

func (id ID) StrictEncode(w io.Writer) (int, error) {
	return strict.WriteRaw(w, id[:])
}

func (id *ID) StrictDecode(r io.Reader) error {
	return strict.ReadRaw(r, id[:])
}
