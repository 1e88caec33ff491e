package strict

import "io"

// Wrapper types give primitive values the capability contract, so they can
// appear as sequence elements, map keys and option payloads. A wrapper
// encodes identically to its underlying value; the wrapping adds no framing.

type Bool bool

func (v Bool) StrictEncode(w io.Writer) (int, error) { return WriteBool(w, bool(v)) }

func (v *Bool) StrictDecode(r io.Reader) error {
	x, err := ReadBool(r)
	if err != nil {
		return err
	}
	*v = Bool(x)
	return nil
}

type U8 uint8

func (v U8) StrictEncode(w io.Writer) (int, error) { return WriteU8(w, uint8(v)) }

func (v *U8) StrictDecode(r io.Reader) error {
	x, err := ReadU8(r)
	if err != nil {
		return err
	}
	*v = U8(x)
	return nil
}

type U16 uint16

func (v U16) StrictEncode(w io.Writer) (int, error) { return WriteU16(w, uint16(v)) }

func (v *U16) StrictDecode(r io.Reader) error {
	x, err := ReadU16(r)
	if err != nil {
		return err
	}
	*v = U16(x)
	return nil
}

type U32 uint32

func (v U32) StrictEncode(w io.Writer) (int, error) { return WriteU32(w, uint32(v)) }

func (v *U32) StrictDecode(r io.Reader) error {
	x, err := ReadU32(r)
	if err != nil {
		return err
	}
	*v = U32(x)
	return nil
}

type U64 uint64

func (v U64) StrictEncode(w io.Writer) (int, error) { return WriteU64(w, uint64(v)) }

func (v *U64) StrictDecode(r io.Reader) error {
	x, err := ReadU64(r)
	if err != nil {
		return err
	}
	*v = U64(x)
	return nil
}

type I8 int8

func (v I8) StrictEncode(w io.Writer) (int, error) { return WriteI8(w, int8(v)) }

func (v *I8) StrictDecode(r io.Reader) error {
	x, err := ReadI8(r)
	if err != nil {
		return err
	}
	*v = I8(x)
	return nil
}

type I16 int16

func (v I16) StrictEncode(w io.Writer) (int, error) { return WriteI16(w, int16(v)) }

func (v *I16) StrictDecode(r io.Reader) error {
	x, err := ReadI16(r)
	if err != nil {
		return err
	}
	*v = I16(x)
	return nil
}

type I32 int32

func (v I32) StrictEncode(w io.Writer) (int, error) { return WriteI32(w, int32(v)) }

func (v *I32) StrictDecode(r io.Reader) error {
	x, err := ReadI32(r)
	if err != nil {
		return err
	}
	*v = I32(x)
	return nil
}

type I64 int64

func (v I64) StrictEncode(w io.Writer) (int, error) { return WriteI64(w, int64(v)) }

func (v *I64) StrictDecode(r io.Reader) error {
	x, err := ReadI64(r)
	if err != nil {
		return err
	}
	*v = I64(x)
	return nil
}

type F32 float32

func (v F32) StrictEncode(w io.Writer) (int, error) { return WriteF32(w, float32(v)) }

func (v *F32) StrictDecode(r io.Reader) error {
	x, err := ReadF32(r)
	if err != nil {
		return err
	}
	*v = F32(x)
	return nil
}

type F64 float64

func (v F64) StrictEncode(w io.Writer) (int, error) { return WriteF64(w, float64(v)) }

func (v *F64) StrictDecode(r io.Reader) error {
	x, err := ReadF64(r)
	if err != nil {
		return err
	}
	*v = F64(x)
	return nil
}

type Str string

func (v Str) StrictEncode(w io.Writer) (int, error) { return WriteString(w, string(v)) }

func (v *Str) StrictDecode(r io.Reader) error {
	x, err := ReadString(r)
	if err != nil {
		return err
	}
	*v = Str(x)
	return nil
}

type Bytes []byte

func (v Bytes) StrictEncode(w io.Writer) (int, error) { return WriteByteSeq(w, v) }

func (v *Bytes) StrictDecode(r io.Reader) error {
	x, err := ReadByteSeq(r)
	if err != nil {
		return err
	}
	*v = x
	return nil
}
