package derive

import (
	"io"

	"go.uber.org/zap"

	"github.com/youkchan/strict-encoding/errors"
)

// Field is one entry in a record description: a name (used in error paths
// only, never on the wire) plus the bound encode/decode behavior.
type Field[T any] struct {
	Name string
	enc  func(v *T, w io.Writer) (int, error)
	dec  func(v *T, r io.Reader) error
	skip bool
	def  func(v *T)
}

// Record is the derived codec for a compound type with named fields declared
// in a fixed order. Only declared order and field types affect the byte
// layout.
type Record[T any] struct {
	name   string
	fields []Field[T]
}

// NewRecord validates a record description. Duplicate field names fail here,
// at description time, never during execution.
func NewRecord[T any](name string, fields ...Field[T]) (*Record[T], error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup {
			return nil, errors.DuplicateField(name, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	Logger().Debug("derived record",
		zap.String("record", name),
		zap.Int("fields", len(fields)))
	return &Record[T]{name: name, fields: fields}, nil
}

// MustRecord is NewRecord for package-level registration; it panics on a
// malformed description.
func MustRecord[T any](name string, fields ...Field[T]) *Record[T] {
	rec, err := NewRecord(name, fields...)
	if err != nil {
		panic(err)
	}
	return rec
}

// Name returns the record's declared name.
func (rec *Record[T]) Name() string {
	return rec.name
}

// Encode writes v's fields strictly in declared order. Skip fields emit
// nothing.
func (rec *Record[T]) Encode(w io.Writer, v *T) (int, error) {
	total := 0
	for i := range rec.fields {
		f := &rec.fields[i]
		if f.skip {
			continue
		}
		n, err := f.enc(v, w)
		total += n
		if err != nil {
			return total, errors.Pathed(err, rec.name, f.Name)
		}
	}
	return total, nil
}

// Decode reads v's fields in declared order, stopping at the first error.
// Skip fields consume no input and are restored from their defaults.
func (rec *Record[T]) Decode(r io.Reader, v *T) error {
	for i := range rec.fields {
		f := &rec.fields[i]
		if f.skip {
			if f.def != nil {
				f.def(v)
			}
			continue
		}
		if err := f.dec(v, r); err != nil {
			return errors.Pathed(err, rec.name, f.Name)
		}
	}
	return nil
}

// Skip declares a field that is excluded from the wire form entirely. On
// decode the supplied default runs instead of reading input; a nil default
// leaves the field at its zero value.
func Skip[T any](name string, def func(v *T)) Field[T] {
	return Field[T]{Name: name, skip: true, def: def}
}
