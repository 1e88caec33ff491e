package strict

import (
	"io"
	"unicode/utf8"

	"github.com/youkchan/strict-encoding/errors"
)

// WriteString encodes s as a u16 byte count followed by its UTF-8 bytes.
// Go strings can hold arbitrary bytes, so validity is checked on encode as
// well as decode.
func WriteString(w io.Writer, s string) (int, error) {
	if !utf8.ValidString(s) {
		return 0, errors.InvalidUTF8(errors.PhaseEncode, []byte(s))
	}
	return writePrefixed(w, []byte(s), "string")
}

// ReadString decodes a length-prefixed UTF-8 string. Invalid bytes are an
// InvalidUTF8 error, never replaced with a placeholder.
func ReadString(r io.Reader) (string, error) {
	b, err := readPrefixed(r, "string")
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.InvalidUTF8(errors.PhaseDecode, b)
	}
	return string(b), nil
}

// WriteByteSeq encodes b as a u16 byte count followed by the bytes.
func WriteByteSeq(w io.Writer, b []byte) (int, error) {
	return writePrefixed(w, b, "bytes")
}

// ReadByteSeq decodes a length-prefixed byte sequence.
func ReadByteSeq(r io.Reader) ([]byte, error) {
	return readPrefixed(r, "bytes")
}

func writePrefixed(w io.Writer, b []byte, typ string) (int, error) {
	if len(b) > MaxItems {
		return 0, errors.TooManyElements(typ, len(b), MaxItems)
	}
	n, err := WriteU16(w, uint16(len(b)))
	if err != nil {
		return n, err
	}
	if err := writeFull(w, b); err != nil {
		return n, err
	}
	return n + len(b), nil
}

func readPrefixed(r io.Reader, typ string) ([]byte, error) {
	count, err := ReadU16(r)
	if err != nil {
		return nil, errors.Pathed(err, typ)
	}
	// The prefix width bounds this allocation at 64 KiB.
	b := make([]byte, int(count))
	if err := readExact(r, b, typ); err != nil {
		return nil, err
	}
	return b, nil
}
