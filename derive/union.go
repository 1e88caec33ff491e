package derive

import (
	"io"
	"reflect"

	"go.uber.org/zap"

	"github.com/youkchan/strict-encoding/errors"
	"github.com/youkchan/strict-encoding/strict"
)

// Union is the derived codec for a tagged union over the interface type T:
// a fixed-width discriminant followed by the active variant's encoding.
type Union[T strict.Codec] struct {
	name   string
	width  int
	byDisc map[uint32]*variantDef[T]
	byType map[reflect.Type]*variantDef[T]
}

type variantDef[T strict.Codec] struct {
	name    string
	disc    uint32
	factory func() T
}

// UnionBuilder collects an ordered variant declaration. All validation
// happens in Build; builder methods never fail mid-chain.
type UnionBuilder[T strict.Codec] struct {
	name     string
	width    int
	next     uint32
	variants []variantDef[T]
	err      error
}

// NewUnion starts a union description for the interface type T.
func NewUnion[T strict.Codec](name string) *UnionBuilder[T] {
	return &UnionBuilder[T]{name: name}
}

// DiscriminantWidth declares the discriminant width in bytes: 1, 2 or 4.
// Without it the smallest width covering the declared discriminants is used.
func (b *UnionBuilder[T]) DiscriminantWidth(width int) *UnionBuilder[T] {
	if width != 1 && width != 2 && width != 4 {
		b.fail(errors.New(errors.PhaseDerive, errors.KindInvalidValue).
			Type(b.name).
			Value(width).
			Detail("discriminant width must be 1, 2 or 4 bytes").
			Build())
		return b
	}
	b.width = width
	return b
}

// Variant declares the next variant with the default discriminant: one past
// the previously declared one, starting at 0. The factory constructs a fresh
// value of the variant's concrete type for decoding into.
func (b *UnionBuilder[T]) Variant(name string, factory func() T) *UnionBuilder[T] {
	return b.VariantAt(b.next, name, factory)
}

// VariantAt declares a variant with an explicit discriminant, e.g. to match
// an external wire format. Subsequent default-numbered variants continue
// from disc+1.
func (b *UnionBuilder[T]) VariantAt(disc uint32, name string, factory func() T) *UnionBuilder[T] {
	b.variants = append(b.variants, variantDef[T]{name: name, disc: disc, factory: factory})
	b.next = disc + 1
	return b
}

func (b *UnionBuilder[T]) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build validates the description: at least one variant, pairwise distinct
// discriminants, names and concrete types, and discriminants that fit the
// width.
func (b *UnionBuilder[T]) Build() (*Union[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.variants) == 0 {
		return nil, errors.New(errors.PhaseDerive, errors.KindInvalidValue).
			Type(b.name).
			Detail("union declares no variants").
			Build()
	}

	width := b.width
	if width == 0 {
		maxDisc := uint32(0)
		for i := range b.variants {
			if b.variants[i].disc > maxDisc {
				maxDisc = b.variants[i].disc
			}
		}
		switch {
		case maxDisc <= 0xFF:
			width = 1
		case maxDisc <= 0xFFFF:
			width = 2
		default:
			width = 4
		}
	}

	u := &Union[T]{
		name:   b.name,
		width:  width,
		byDisc: make(map[uint32]*variantDef[T], len(b.variants)),
		byType: make(map[reflect.Type]*variantDef[T], len(b.variants)),
	}
	names := make(map[string]struct{}, len(b.variants))
	for i := range b.variants {
		def := &b.variants[i]
		if width < 4 && uint64(def.disc) >= uint64(1)<<(8*width) {
			return nil, errors.WidthOverflow(b.name, width, uint64(def.disc))
		}
		if _, dup := u.byDisc[def.disc]; dup {
			return nil, errors.DuplicateDiscriminant(b.name, uint64(def.disc))
		}
		if _, dup := names[def.name]; dup {
			return nil, errors.DuplicateField(b.name, def.name)
		}
		names[def.name] = struct{}{}

		rt := reflect.TypeOf(def.factory())
		if rt == nil {
			return nil, errors.New(errors.PhaseDerive, errors.KindInvalidValue).
				Type(b.name).
				Detail("variant %q factory returned nil", def.name).
				Build()
		}
		if _, dup := u.byType[rt]; dup {
			return nil, errors.New(errors.PhaseDerive, errors.KindInvalidValue).
				Type(b.name).
				Detail("variant %q reuses concrete type %s", def.name, rt).
				Build()
		}
		u.byDisc[def.disc] = def
		u.byType[rt] = def
	}

	Logger().Debug("derived union",
		zap.String("union", b.name),
		zap.Int("variants", len(b.variants)),
		zap.Int("discriminant_width", width))
	return u, nil
}

// MustBuild is Build for package-level registration; it panics on a
// malformed description.
func (b *UnionBuilder[T]) MustBuild() *Union[T] {
	u, err := b.Build()
	if err != nil {
		panic(err)
	}
	return u
}

// Name returns the union's declared name.
func (u *Union[T]) Name() string {
	return u.name
}

// DiscriminantWidth returns the discriminant width in bytes.
func (u *Union[T]) DiscriminantWidth() int {
	return u.width
}

// Encode writes the discriminant for v's concrete type, then v itself.
func (u *Union[T]) Encode(w io.Writer, v T) (int, error) {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return 0, errors.UnknownType(u.name, "<nil>")
	}
	def, ok := u.byType[rt]
	if !ok {
		return 0, errors.UnknownType(u.name, rt.String())
	}
	total, err := u.writeDisc(w, def.disc)
	if err != nil {
		return total, errors.Pathed(err, u.name)
	}
	n, err := v.StrictEncode(w)
	total += n
	if err != nil {
		return total, errors.Pathed(err, u.name, def.name)
	}
	return total, nil
}

// Decode reads a discriminant and exactly the matching variant's fields. A
// discriminant with no declared variant is UnknownVariant.
func (u *Union[T]) Decode(r io.Reader) (T, error) {
	var zero T
	disc, err := u.readDisc(r)
	if err != nil {
		return zero, errors.Pathed(err, u.name)
	}
	def, ok := u.byDisc[disc]
	if !ok {
		return zero, errors.UnknownVariant(u.name, uint64(disc))
	}
	v := def.factory()
	if err := v.StrictDecode(r); err != nil {
		return zero, errors.Pathed(err, u.name, def.name)
	}
	return v, nil
}

func (u *Union[T]) writeDisc(w io.Writer, disc uint32) (int, error) {
	switch u.width {
	case 1:
		return strict.WriteU8(w, uint8(disc))
	case 2:
		return strict.WriteU16(w, uint16(disc))
	default:
		return strict.WriteU32(w, disc)
	}
}

func (u *Union[T]) readDisc(r io.Reader) (uint32, error) {
	switch u.width {
	case 1:
		v, err := strict.ReadU8(r)
		return uint32(v), err
	case 2:
		v, err := strict.ReadU16(r)
		return uint32(v), err
	default:
		return strict.ReadU32(r)
	}
}
