// Package commit derives commitments from canonical encodings.
//
// A commitment is a BLAKE3-256 digest of a value's strict encoding. Since
// the encoding is deterministic, two parties holding equal values always
// derive equal commitment IDs, which is what makes the IDs usable in
// client-side-validated protocols. Checksum offers a cheap xxhash64 tag for
// integrity checks that do not need collision resistance.
package commit
