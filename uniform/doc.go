// Package uniform represents network addresses of any family as a fixed
// 37-byte string, so heterogeneous addresses compose uniformly inside
// strict-encoded messages.
//
// Layout: format byte, 33-byte payload (significant prefix per format, zero
// tail), little-endian u16 port, transport byte. Unknown format or transport
// bytes and nonzero payload tails are rejected on both encode and decode,
// keeping the mapping between addresses and byte strings one-to-one.
package uniform
