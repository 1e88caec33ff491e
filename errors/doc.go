// Package errors provides structured error types for strict encoding and
// decoding.
//
// Every failure carries a Phase (encode, decode, derive) and a Kind, plus
// optional context: the field path inside a compound value, the wire type
// name, the offending value, and a wrapped cause.
//
// The decode taxonomy is closed: unexpected_eof, invalid_value,
// unknown_variant, invalid_utf8, repeated_key, trailing_data. Encode failures
// are either io (sink rejected a write) or a bound violation detected before
// any bytes are emitted (too_many_elements, value_out_of_range). Derive kinds
// surface only from Build on a type description.
//
// Use errors.Is with a Phase+Kind prototype, or the KindOf helper:
//
//	if errors.KindOf(err) == errors.KindUnexpectedEOF { ... }
package errors
