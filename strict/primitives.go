package strict

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/youkchan/strict-encoding/errors"
)

// Fixed-width scalar codecs. Output length is determined solely by the type;
// byte order is little-endian throughout the module.

func WriteU8(w io.Writer, v uint8) (int, error) {
	if err := writeFull(w, []byte{v}); err != nil {
		return 0, err
	}
	return 1, nil
}

func ReadU8(r io.Reader) (uint8, error) {
	var b [1]byte
	if err := readExact(r, b[:], "u8"); err != nil {
		return 0, err
	}
	return b[0], nil
}

func WriteU16(w io.Writer, v uint16) (int, error) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	if err := writeFull(w, b[:]); err != nil {
		return 0, err
	}
	return 2, nil
}

func ReadU16(r io.Reader) (uint16, error) {
	var b [2]byte
	if err := readExact(r, b[:], "u16"); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func WriteU32(w io.Writer, v uint32) (int, error) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	if err := writeFull(w, b[:]); err != nil {
		return 0, err
	}
	return 4, nil
}

func ReadU32(r io.Reader) (uint32, error) {
	var b [4]byte
	if err := readExact(r, b[:], "u32"); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func WriteU64(w io.Writer, v uint64) (int, error) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	if err := writeFull(w, b[:]); err != nil {
		return 0, err
	}
	return 8, nil
}

func ReadU64(r io.Reader) (uint64, error) {
	var b [8]byte
	if err := readExact(r, b[:], "u64"); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func WriteI8(w io.Writer, v int8) (int, error) {
	return WriteU8(w, uint8(v))
}

func ReadI8(r io.Reader) (int8, error) {
	v, err := ReadU8(r)
	return int8(v), err
}

func WriteI16(w io.Writer, v int16) (int, error) {
	return WriteU16(w, uint16(v))
}

func ReadI16(r io.Reader) (int16, error) {
	v, err := ReadU16(r)
	return int16(v), err
}

func WriteI32(w io.Writer, v int32) (int, error) {
	return WriteU32(w, uint32(v))
}

func ReadI32(r io.Reader) (int32, error) {
	v, err := ReadU32(r)
	return int32(v), err
}

func WriteI64(w io.Writer, v int64) (int, error) {
	return WriteU64(w, uint64(v))
}

func ReadI64(r io.Reader) (int64, error) {
	v, err := ReadU64(r)
	return int64(v), err
}

// Floats are encoded as their IEEE 754 bit pattern, little-endian. The bits
// are preserved exactly in both directions.

func WriteF32(w io.Writer, v float32) (int, error) {
	return WriteU32(w, math.Float32bits(v))
}

func ReadF32(r io.Reader) (float32, error) {
	bits, err := ReadU32(r)
	return math.Float32frombits(bits), err
}

func WriteF64(w io.Writer, v float64) (int, error) {
	return WriteU64(w, math.Float64bits(v))
}

func ReadF64(r io.Reader) (float64, error) {
	bits, err := ReadU64(r)
	return math.Float64frombits(bits), err
}

// WriteBool encodes a boolean as a single byte, 0x00 or 0x01.
func WriteBool(w io.Writer, v bool) (int, error) {
	b := uint8(0)
	if v {
		b = 1
	}
	return WriteU8(w, b)
}

// ReadBool accepts only the two canonical byte values. Any other byte is an
// InvalidValue: mapping "anything nonzero" to true would let distinct byte
// strings decode to the same value.
func ReadBool(r io.Reader) (bool, error) {
	var b [1]byte
	if err := readExact(r, b[:], "bool"); err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.InvalidValue(errors.PhaseDecode, "bool", b[0], "must be 0 or 1")
	}
}

// WriteRaw writes b as-is, with no length prefix. The length is a property
// of the caller's static type.
func WriteRaw(w io.Writer, b []byte) (int, error) {
	if err := writeFull(w, b); err != nil {
		return 0, err
	}
	return len(b), nil
}

// ReadRaw fills b exactly.
func ReadRaw(r io.Reader, b []byte) error {
	return readExact(r, b, "raw bytes")
}
