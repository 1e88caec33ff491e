// Package cryptoenc gives common cryptographic value types the
// strict-encoding capability contract. Keys and signatures encode as their
// fixed-width raw bytes, matching their standard wire representations.
package cryptoenc

import (
	"crypto/ed25519"
	"io"

	"golang.org/x/crypto/curve25519"

	"github.com/youkchan/strict-encoding/errors"
	"github.com/youkchan/strict-encoding/strict"
)

// PublicKey is an Ed25519 public key, encoded as 32 raw bytes.
type PublicKey [ed25519.PublicKeySize]byte

// PublicKeyFrom copies a stdlib ed25519 key. The length is checked because
// ed25519.PublicKey is a slice type.
func PublicKeyFrom(k ed25519.PublicKey) (PublicKey, error) {
	var pk PublicKey
	if len(k) != ed25519.PublicKeySize {
		return pk, errors.InvalidValue(errors.PhaseEncode, "ed25519 public key", len(k), "key must be 32 bytes")
	}
	copy(pk[:], k)
	return pk, nil
}

// Key returns the stdlib form.
func (pk PublicKey) Key() ed25519.PublicKey {
	return ed25519.PublicKey(pk[:])
}

// Verify reports whether sig is a valid signature of message under pk.
func (pk PublicKey) Verify(message []byte, sig Signature) bool {
	return ed25519.Verify(pk.Key(), message, sig[:])
}

func (pk PublicKey) StrictEncode(w io.Writer) (int, error) {
	return strict.WriteRaw(w, pk[:])
}

func (pk *PublicKey) StrictDecode(r io.Reader) error {
	return strict.ReadRaw(r, pk[:])
}

// Signature is an Ed25519 signature, encoded as 64 raw bytes.
type Signature [ed25519.SignatureSize]byte

// Sign signs message with priv.
func Sign(priv ed25519.PrivateKey, message []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(priv, message))
	return sig
}

func (s Signature) StrictEncode(w io.Writer) (int, error) {
	return strict.WriteRaw(w, s[:])
}

func (s *Signature) StrictDecode(r io.Reader) error {
	return strict.ReadRaw(r, s[:])
}

// X25519PublicKey is a Curve25519 Diffie-Hellman public key, encoded as 32
// raw bytes.
type X25519PublicKey [curve25519.PointSize]byte

// X25519FromSecret derives the public key for a 32-byte secret scalar.
func X25519FromSecret(secret []byte) (X25519PublicKey, error) {
	var pk X25519PublicKey
	pub, err := curve25519.X25519(secret, curve25519.Basepoint)
	if err != nil {
		return pk, errors.InvalidValue(errors.PhaseEncode, "x25519 public key", nil, "invalid secret: "+err.Error())
	}
	copy(pk[:], pub)
	return pk, nil
}

// SharedSecret computes the Diffie-Hellman shared secret between a local
// secret scalar and pk. An all-zero result is rejected as a low-order point.
func (pk X25519PublicKey) SharedSecret(secret []byte) ([]byte, error) {
	shared, err := curve25519.X25519(secret, pk[:])
	if err != nil {
		return nil, errors.InvalidValue(errors.PhaseDecode, "x25519 public key", nil, "low-order point: "+err.Error())
	}
	return shared, nil
}

func (pk X25519PublicKey) StrictEncode(w io.Writer) (int, error) {
	return strict.WriteRaw(w, pk[:])
}

func (pk *X25519PublicKey) StrictDecode(r io.Reader) error {
	return strict.ReadRaw(r, pk[:])
}
