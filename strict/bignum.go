package strict

import (
	"encoding/binary"
	"io"
)

// U128 is an unsigned 128-bit integer, value Hi<<64 | Lo. Encoded as 16
// little-endian bytes.
type U128 struct {
	Lo uint64
	Hi uint64
}

// U128FromUint64 widens x.
func U128FromUint64(x uint64) U128 {
	return U128{Lo: x}
}

func (v U128) StrictEncode(w io.Writer) (int, error) {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], v.Lo)
	binary.LittleEndian.PutUint64(b[8:], v.Hi)
	return WriteRaw(w, b[:])
}

func (v *U128) StrictDecode(r io.Reader) error {
	var b [16]byte
	if err := readExact(r, b[:], "u128"); err != nil {
		return err
	}
	v.Lo = binary.LittleEndian.Uint64(b[:8])
	v.Hi = binary.LittleEndian.Uint64(b[8:])
	return nil
}

// I128 is a signed 128-bit integer in two's complement; Hi carries the sign.
type I128 struct {
	Lo uint64
	Hi int64
}

// I128FromInt64 sign-extends x.
func I128FromInt64(x int64) I128 {
	v := I128{Lo: uint64(x)}
	if x < 0 {
		v.Hi = -1
	}
	return v
}

func (v I128) StrictEncode(w io.Writer) (int, error) {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], v.Lo)
	binary.LittleEndian.PutUint64(b[8:], uint64(v.Hi))
	return WriteRaw(w, b[:])
}

func (v *I128) StrictDecode(r io.Reader) error {
	var b [16]byte
	if err := readExact(r, b[:], "i128"); err != nil {
		return err
	}
	v.Lo = binary.LittleEndian.Uint64(b[:8])
	v.Hi = int64(binary.LittleEndian.Uint64(b[8:]))
	return nil
}

// Wider unsigned integers are kept as their little-endian byte string; byte
// 0 is the least significant. They encode raw, with no length prefix.

type U256 [32]byte

// U256FromUint64 widens x.
func U256FromUint64(x uint64) U256 {
	var v U256
	binary.LittleEndian.PutUint64(v[:8], x)
	return v
}

func (v U256) StrictEncode(w io.Writer) (int, error) {
	return WriteRaw(w, v[:])
}

func (v *U256) StrictDecode(r io.Reader) error {
	return readExact(r, v[:], "u256")
}

type U512 [64]byte

// U512FromUint64 widens x.
func U512FromUint64(x uint64) U512 {
	var v U512
	binary.LittleEndian.PutUint64(v[:8], x)
	return v
}

func (v U512) StrictEncode(w io.Writer) (int, error) {
	return WriteRaw(w, v[:])
}

func (v *U512) StrictDecode(r io.Reader) error {
	return readExact(r, v[:], "u512")
}

type U1024 [128]byte

// U1024FromUint64 widens x.
func U1024FromUint64(x uint64) U1024 {
	var v U1024
	binary.LittleEndian.PutUint64(v[:8], x)
	return v
}

func (v U1024) StrictEncode(w io.Writer) (int, error) {
	return WriteRaw(w, v[:])
}

func (v *U1024) StrictDecode(r io.Reader) error {
	return readExact(r, v[:], "u1024")
}
