// Package strict implements a deterministic binary encoding for typed values.
//
// Given a value, the encoding produces exactly one byte sequence; given that
// byte sequence, decoding reconstructs exactly the original value or fails
// with a typed error. The format is intended for consensus-sensitive and
// networked use, where two implementations encoding the same logical value
// must agree bit for bit and any deviation on decode is a hard error.
//
// # Wire format
//
// All multi-byte values are little-endian. Widths are fixed by the type,
// never by the value:
//
//	Type            Encoding
//	────────────────────────────────────────────────
//	bool            1 byte, 0x00 or 0x01 only
//	u8..u64, i8..i64  fixed width LE
//	u128/i128       16 bytes LE
//	u256/u512/u1024 raw LE byte string
//	f32/f64         IEEE 754 bits, LE
//	[N]byte         raw, no prefix
//	string          u16 count + UTF-8 bytes
//	sequence        u16 count + elements in order
//	map             u16 count + (key, value) pairs in
//	                canonical key order
//	option          0x00, or 0x01 + payload
//
// Sequence and map counts are element counts, not byte counts, and cap a
// collection at 65535 entries. Map keys are ordered byte-lexicographically
// by their own canonical encoding, so equal maps encode identically
// regardless of construction history.
//
// # Capability contract
//
// A type participates in composition by implementing Encodable and
// Decodable. Primitives are covered by wrapper types (U32, Str, ...) and by
// the Write/Read function pairs; compound types usually derive their
// implementation with the derive package.
//
// Top-level entry points:
//
//	Serialize(v)          value -> bytes
//	Deserialize(data, v)  bytes -> value, rejecting trailing bytes
//	Decode(r, v)          stream form, caller owns framing
//
// Decoding is fail-closed: a boolean byte outside {0,1}, an unknown union
// discriminant, invalid UTF-8, a duplicate or out-of-order map key, or a
// short stream each abort with a typed error from the errors package. There
// is no best-effort recovery and no partial result.
//
// Encode and decode are pure, synchronous and stateless; concurrent calls
// over distinct values need no coordination. The caller owns the sink or
// source and any synchronization across calls that share one.
package strict
