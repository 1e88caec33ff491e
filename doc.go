// Package strictencoding provides deterministic binary serialization with a
// canonical, confined wire format.
//
// Equal values always produce identical bytes: integers are little-endian at
// their fixed widths, collections carry u16 element counts, map entries are
// sorted by their keys' encoded bytes, and every optional or union value is
// framed by an explicit tag. Decoding is fail-closed: any byte pattern that
// is not the canonical encoding of some value is rejected with a structured
// error rather than repaired.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	strict-encoding/     Root package documentation
//	├── strict/          Core wire codecs: primitives, strings, collections,
//	│                    options, wide integers, time values
//	├── derive/          Derivation engine for records and tagged unions
//	├── commit/          BLAKE3 commitments and xxhash checksums over
//	│                    canonical encodings
//	├── uniform/         Fixed-size uniform network addresses
//	├── extensions/      Codec adapters for UUIDs and cryptographic keys
//	├── errors/          Structured error types for debugging
//	└── cmd/strictvec/   Cross-implementation test vector tool
//
// # Quick Start
//
// Encode and decode a primitive:
//
//	data, err := strict.Serialize(strict.U16(300))
//	// data == []byte{0x2C, 0x01}
//
//	var v strict.U16
//	err = strict.Deserialize(data, &v)
//
// Derive a codec for a struct:
//
//	type Person struct {
//	    Name string
//	    Age  uint8
//	}
//
//	var personCodec = derive.MustRecord[Person]("Person",
//	    derive.Str("name", func(p *Person) *string { return &p.Name }),
//	    derive.U8("age", func(p *Person) *uint8 { return &p.Age }),
//	)
//
// Commit to a value:
//
//	id, err := commit.Commit(strict.Str("hello"))
//
// # Wire Format Guarantees
//
// The format is confined: no type information, no framing beyond declared
// lengths, no extension points. What a type's description says is on the
// wire is everything that is on the wire. Collections are capped at 65535
// elements by their u16 length prefix, which also bounds what a decoder will
// allocate before seeing actual input.
package strictencoding
