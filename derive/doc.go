// Package derive builds encode/decode implementations for compound types
// from a description of their shape.
//
// A description is assembled once, at package init time, and consulted on
// every encode/decode call. There are exactly two phases: description
// (Build, where duplicate field names, duplicate discriminants and width
// overflows are caught) and execution (stateless, re-entrant Encode/Decode).
//
// # Records
//
// A record is an ordered list of named fields. Field adapters bind struct
// fields through accessor functions:
//
//	type Person struct {
//		Name  string
//		Age   uint8
//		Tags  []strict.Str
//		cache map[string]int
//	}
//
//	var personRec = derive.MustRecord[Person]("Person",
//		derive.Str("name", func(p *Person) *string { return &p.Name }),
//		derive.U8("age", func(p *Person) *uint8 { return &p.Age }),
//		derive.Seq("tags", func(p *Person) *[]strict.Str { return &p.Tags }),
//		derive.Skip("cache", func(p *Person) { p.cache = nil }),
//	)
//
//	func (p *Person) StrictEncode(w io.Writer) (int, error) { return personRec.Encode(w, p) }
//	func (p *Person) StrictDecode(r io.Reader) error        { return personRec.Decode(r, p) }
//
// Fields encode strictly in declared order; decoding stops at the first
// field error. Names appear only in error paths — renaming a field without
// reordering it never changes the bytes. A Skip field is absent from the
// wire entirely and restored from its default on decode.
//
// # Unions
//
// A tagged union is an ordered list of named variants over a common
// interface. The wire form is a fixed-width discriminant followed by the
// active variant's fields:
//
//	var shapeUnion = derive.NewUnion[Shape]("Shape").
//		Variant("circle", func() Shape { return &Circle{} }).
//		Variant("rect", func() Shape { return &Rect{} }).
//		VariantAt(16, "blob", func() Shape { return &Blob{} }).
//		MustBuild()
//
// Discriminants default to declaration order starting at 0; VariantAt
// declares an explicit value (e.g. to match an external wire format), and
// numbering continues from it. The discriminant width is an explicit checked
// property of the union: by default the smallest of 1, 2 or 4 bytes covering
// the declared discriminants, overridable with DiscriminantWidth. Duplicate
// discriminants and discriminants that do not fit the width fail at Build.
package derive
