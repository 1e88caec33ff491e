package derive

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youkchan/strict-encoding/errors"
	"github.com/youkchan/strict-encoding/strict"
)

type circle struct {
	Radius uint32
}

type square struct {
	Side uint32
}

var circleRecord = MustRecord[circle]("Circle",
	U32("radius", func(c *circle) *uint32 { return &c.Radius }),
)

var squareRecord = MustRecord[square]("Square",
	U32("side", func(s *square) *uint32 { return &s.Side }),
)

func (c *circle) StrictEncode(w io.Writer) (int, error) { return circleRecord.Encode(w, c) }
func (c *circle) StrictDecode(r io.Reader) error        { return circleRecord.Decode(r, c) }
func (s *square) StrictEncode(w io.Writer) (int, error) { return squareRecord.Encode(w, s) }
func (s *square) StrictDecode(r io.Reader) error        { return squareRecord.Decode(r, s) }

func shapeUnion(t *testing.T) *Union[strict.Codec] {
	t.Helper()
	u, err := NewUnion[strict.Codec]("Shape").
		Variant("circle", func() strict.Codec { return new(circle) }).
		Variant("square", func() strict.Codec { return new(square) }).
		Build()
	require.NoError(t, err)
	return u
}

func TestUnion_RoundTrip(t *testing.T) {
	u := shapeUnion(t)

	for _, in := range []strict.Codec{&circle{Radius: 5}, &square{Side: 9}} {
		var buf bytes.Buffer
		_, err := u.Encode(&buf, in)
		require.NoError(t, err)

		out, err := u.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestUnion_DiscriminantPrecedesPayload(t *testing.T) {
	u := shapeUnion(t)

	var buf bytes.Buffer
	_, err := u.Encode(&buf, &square{Side: 1})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01, 0x00, 0x00, 0x00}, buf.Bytes())
}

func TestUnion_UnknownDiscriminant(t *testing.T) {
	u := shapeUnion(t)

	_, err := u.Decode(bytes.NewReader([]byte{0xFF, 0x00, 0x00, 0x00, 0x00}))
	require.Error(t, err)
	assert.Equal(t, errors.KindUnknownVariant, errors.KindOf(err))
}

func TestUnion_EncodeRejectsUndeclaredType(t *testing.T) {
	u, err := NewUnion[strict.Codec]("Shape").
		Variant("circle", func() strict.Codec { return new(circle) }).
		Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = u.Encode(&buf, &square{Side: 1})
	require.Error(t, err)
	assert.Equal(t, errors.KindUnknownType, errors.KindOf(err))
	assert.Zero(t, buf.Len())
}

func TestUnion_CustomDiscriminants(t *testing.T) {
	u, err := NewUnion[strict.Codec]("Shape").
		VariantAt(16, "circle", func() strict.Codec { return new(circle) }).
		Variant("square", func() strict.Codec { return new(square) }).
		Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = u.Encode(&buf, &square{Side: 2})
	require.NoError(t, err)
	// square numbers from the predecessor: 16+1.
	assert.Equal(t, byte(17), buf.Bytes()[0])
}

func TestUnion_DefaultWidthCoversDiscriminants(t *testing.T) {
	u, err := NewUnion[strict.Codec]("Shape").
		VariantAt(300, "circle", func() strict.Codec { return new(circle) }).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 2, u.DiscriminantWidth())

	u, err = NewUnion[strict.Codec]("Shape").
		VariantAt(70000, "circle", func() strict.Codec { return new(circle) }).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 4, u.DiscriminantWidth())
}

func TestUnion_WideDiscriminantOnWire(t *testing.T) {
	u, err := NewUnion[strict.Codec]("Shape").
		DiscriminantWidth(2).
		VariantAt(300, "circle", func() strict.Codec { return new(circle) }).
		Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = u.Encode(&buf, &circle{Radius: 1})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2C, 0x01, 0x01, 0x00, 0x00, 0x00}, buf.Bytes())

	out, err := u.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, &circle{Radius: 1}, out)
}

func TestUnionBuild_WidthOverflow(t *testing.T) {
	_, err := NewUnion[strict.Codec]("Shape").
		DiscriminantWidth(1).
		VariantAt(256, "circle", func() strict.Codec { return new(circle) }).
		Build()
	require.Error(t, err)
	assert.Equal(t, errors.KindWidthOverflow, errors.KindOf(err))
}

func TestUnionBuild_DuplicateDiscriminant(t *testing.T) {
	_, err := NewUnion[strict.Codec]("Shape").
		VariantAt(0, "circle", func() strict.Codec { return new(circle) }).
		VariantAt(0, "square", func() strict.Codec { return new(square) }).
		Build()
	require.Error(t, err)
	assert.Equal(t, errors.KindDuplicateDiscriminant, errors.KindOf(err))
}

func TestUnionBuild_DuplicateVariantName(t *testing.T) {
	_, err := NewUnion[strict.Codec]("Shape").
		Variant("x", func() strict.Codec { return new(circle) }).
		Variant("x", func() strict.Codec { return new(square) }).
		Build()
	require.Error(t, err)
	assert.Equal(t, errors.KindDuplicateField, errors.KindOf(err))
}

func TestUnionBuild_NoVariants(t *testing.T) {
	_, err := NewUnion[strict.Codec]("Shape").Build()
	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidValue, errors.KindOf(err))
}

func TestUnionBuild_BadWidth(t *testing.T) {
	_, err := NewUnion[strict.Codec]("Shape").
		DiscriminantWidth(3).
		Variant("circle", func() strict.Codec { return new(circle) }).
		Build()
	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidValue, errors.KindOf(err))
}

func TestUnionBuild_ReusedConcreteType(t *testing.T) {
	_, err := NewUnion[strict.Codec]("Shape").
		Variant("a", func() strict.Codec { return new(circle) }).
		Variant("b", func() strict.Codec { return new(circle) }).
		Build()
	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidValue, errors.KindOf(err))
}

func TestUnion_DecodeTruncatedPayload(t *testing.T) {
	u := shapeUnion(t)

	_, err := u.Decode(bytes.NewReader([]byte{0x00, 0x01, 0x00}))
	require.Error(t, err)
	assert.Equal(t, errors.KindUnexpectedEOF, errors.KindOf(err))

	var serr *errors.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, []string{"Shape", "circle", "Circle", "radius"}, serr.Path)
}
