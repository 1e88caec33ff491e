package derive

import (
	"io"
	"time"

	"github.com/youkchan/strict-encoding/strict"
)

// Field adapters bind a struct field to its wire codec through an accessor
// function. Each delegates to the strict package's primitive, collection or
// variant codec for the field's type.

func scalar[T any, V any](name string, get func(*T) *V,
	write func(io.Writer, V) (int, error), read func(io.Reader) (V, error)) Field[T] {
	return Field[T]{
		Name: name,
		enc: func(v *T, w io.Writer) (int, error) {
			return write(w, *get(v))
		},
		dec: func(v *T, r io.Reader) error {
			x, err := read(r)
			if err != nil {
				return err
			}
			*get(v) = x
			return nil
		},
	}
}

func Bool[T any](name string, get func(*T) *bool) Field[T] {
	return scalar(name, get, strict.WriteBool, strict.ReadBool)
}

func U8[T any](name string, get func(*T) *uint8) Field[T] {
	return scalar(name, get, strict.WriteU8, strict.ReadU8)
}

func U16[T any](name string, get func(*T) *uint16) Field[T] {
	return scalar(name, get, strict.WriteU16, strict.ReadU16)
}

func U32[T any](name string, get func(*T) *uint32) Field[T] {
	return scalar(name, get, strict.WriteU32, strict.ReadU32)
}

func U64[T any](name string, get func(*T) *uint64) Field[T] {
	return scalar(name, get, strict.WriteU64, strict.ReadU64)
}

func I8[T any](name string, get func(*T) *int8) Field[T] {
	return scalar(name, get, strict.WriteI8, strict.ReadI8)
}

func I16[T any](name string, get func(*T) *int16) Field[T] {
	return scalar(name, get, strict.WriteI16, strict.ReadI16)
}

func I32[T any](name string, get func(*T) *int32) Field[T] {
	return scalar(name, get, strict.WriteI32, strict.ReadI32)
}

func I64[T any](name string, get func(*T) *int64) Field[T] {
	return scalar(name, get, strict.WriteI64, strict.ReadI64)
}

func F32[T any](name string, get func(*T) *float32) Field[T] {
	return scalar(name, get, strict.WriteF32, strict.ReadF32)
}

func F64[T any](name string, get func(*T) *float64) Field[T] {
	return scalar(name, get, strict.WriteF64, strict.ReadF64)
}

func Str[T any](name string, get func(*T) *string) Field[T] {
	return scalar(name, get, strict.WriteString, strict.ReadString)
}

func Bytes[T any](name string, get func(*T) *[]byte) Field[T] {
	return scalar(name, get, strict.WriteByteSeq, strict.ReadByteSeq)
}

func Time[T any](name string, get func(*T) *time.Time) Field[T] {
	return scalar(name, get, strict.WriteTime, strict.ReadTime)
}

func Dur[T any](name string, get func(*T) *time.Duration) Field[T] {
	return scalar(name, get, strict.WriteDuration, strict.ReadDuration)
}

// Raw binds a fixed-size byte region, encoded as-is with no length prefix.
// The accessor typically returns a slice over an array field.
func Raw[T any](name string, get func(*T) []byte) Field[T] {
	return Field[T]{
		Name: name,
		enc: func(v *T, w io.Writer) (int, error) {
			return strict.WriteRaw(w, get(v))
		},
		dec: func(v *T, r io.Reader) error {
			return strict.ReadRaw(r, get(v))
		},
	}
}

// Nested binds a field whose type carries its own capability implementation:
// another derived compound type, a wrapper type, or an external collaborator.
func Nested[T any](name string, get func(*T) strict.Codec) Field[T] {
	return Field[T]{
		Name: name,
		enc: func(v *T, w io.Writer) (int, error) {
			return get(v).StrictEncode(w)
		},
		dec: func(v *T, r io.Reader) error {
			return get(v).StrictDecode(r)
		},
	}
}

// Seq binds a variable-length sequence field.
func Seq[T any, E strict.Encodable, PE strict.Ptr[E]](name string, get func(*T) *[]E) Field[T] {
	return Field[T]{
		Name: name,
		enc: func(v *T, w io.Writer) (int, error) {
			return strict.WriteSeq(w, *get(v))
		},
		dec: func(v *T, r io.Reader) error {
			xs, err := strict.ReadSeq[E, PE](r)
			if err != nil {
				return err
			}
			*get(v) = xs
			return nil
		},
	}
}

// FixedSeq binds a fixed-length sequence field; the accessor's slice length
// is the element count and no prefix is written.
func FixedSeq[T any, E strict.Encodable, PE strict.Ptr[E]](name string, get func(*T) []E) Field[T] {
	return Field[T]{
		Name: name,
		enc: func(v *T, w io.Writer) (int, error) {
			return strict.WriteFixedSeq(w, get(v))
		},
		dec: func(v *T, r io.Reader) error {
			return strict.ReadFixedSeq[E, PE](r, get(v))
		},
	}
}

// MapOf binds an associative container field with canonical key ordering.
func MapOf[T any, K strict.MapKey, V strict.Encodable, PK strict.PtrCodec[K], PV strict.Ptr[V]](
	name string, get func(*T) *map[K]V) Field[T] {
	return Field[T]{
		Name: name,
		enc: func(v *T, w io.Writer) (int, error) {
			return strict.WriteMap(w, *get(v))
		},
		dec: func(v *T, r io.Reader) error {
			m, err := strict.ReadMap[K, V, PK, PV](r)
			if err != nil {
				return err
			}
			*get(v) = m
			return nil
		},
	}
}

// Option binds an optional field, absent when the pointer is nil.
func Option[T any, E strict.Encodable, PE strict.Ptr[E]](name string, get func(*T) **E) Field[T] {
	return Field[T]{
		Name: name,
		enc: func(v *T, w io.Writer) (int, error) {
			return strict.WriteOption(w, *get(v))
		},
		dec: func(v *T, r io.Reader) error {
			p, err := strict.ReadOption[E, PE](r)
			if err != nil {
				return err
			}
			*get(v) = p
			return nil
		},
	}
}
