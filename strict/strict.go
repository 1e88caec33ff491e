package strict

import (
	"bytes"
	"io"

	"github.com/youkchan/strict-encoding/errors"
)

// Encodable is implemented by types that can write their canonical encoding
// to a sink. The result is a pure function of the value: no hidden state, no
// dependence on prior calls. The returned count is the number of bytes
// written.
type Encodable interface {
	StrictEncode(w io.Writer) (int, error)
}

// Decodable is implemented by types that can reconstruct themselves from a
// source positioned at a value boundary. On success the source has advanced
// by exactly the number of bytes an equal value encodes to; on failure the
// receiver must not be treated as valid.
type Decodable interface {
	StrictDecode(r io.Reader) error
}

// Codec combines both capabilities.
type Codec interface {
	Encodable
	Decodable
}

// Ptr constrains a pointer to a decodable value. It lets collection decoders
// construct elements in place.
type Ptr[T any] interface {
	*T
	Decodable
}

// PtrCodec constrains a pointer to a value with both capabilities. Map
// decoding needs it to re-derive each key's canonical encoding for ordering
// checks.
type PtrCodec[T any] interface {
	*T
	Codec
}

// MapKey constrains associative container keys: comparable for Go map
// storage, encodable for canonical ordering.
type MapKey interface {
	comparable
	Encodable
}

// MaxItems is the largest element count a length prefix can carry.
const MaxItems = 1<<16 - 1

// seqPrealloc caps the backing storage allocated before any element has
// decoded, so a hostile length prefix cannot force a large allocation from a
// short input.
const seqPrealloc = 256

// Serialize encodes v into a fresh byte slice.
func Serialize(v Encodable) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := v.StrictEncode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize decodes exactly one value from data. Unconsumed bytes after a
// complete value are an error: a buffer declared to hold one value must hold
// exactly one.
func Deserialize(data []byte, v Decodable) error {
	r := bytes.NewReader(data)
	if err := v.StrictDecode(r); err != nil {
		return err
	}
	if n := r.Len(); n > 0 {
		return errors.TrailingData(n)
	}
	return nil
}

// Decode decodes one value from a stream without a trailing-data check.
// Telling "not enough data yet" apart from "malformed" is the caller's
// responsibility; both surface here as UnexpectedEOF.
func Decode(r io.Reader, v Decodable) error {
	return v.StrictDecode(r)
}

func writeFull(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return errors.IO(errors.PhaseEncode, err)
	}
	return nil
}

func readExact(r io.Reader, b []byte, typ string) error {
	if _, err := io.ReadFull(r, b); err != nil {
		return errors.UnexpectedEOF(typ, err)
	}
	return nil
}
