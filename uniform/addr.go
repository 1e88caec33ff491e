package uniform

import (
	"io"
	"net"

	"golang.org/x/crypto/curve25519"

	"github.com/youkchan/strict-encoding/errors"
	"github.com/youkchan/strict-encoding/strict"
)

// EncodedLen is the fixed size of a uniform address on the wire:
// format byte + 33-byte payload + u16 port + transport byte.
const EncodedLen = 37

// Format identifies how the 33-byte payload is interpreted.
type Format uint8

const (
	FormatIPv4    Format = 1 // 4 significant bytes, rest zero
	FormatIPv6    Format = 2 // 16 significant bytes, rest zero
	FormatOnionV3 Format = 3 // 32-byte onion service key, rest zero
	FormatX25519  Format = 4 // 32-byte X25519 public key, rest zero
	FormatEd25519 Format = 5 // 32-byte Ed25519 public key, rest zero
)

// Transport identifies the transport protocol expected at the address.
type Transport uint8

const (
	TransportTCP  Transport = 1
	TransportUDP  Transport = 2
	TransportQUIC Transport = 3
)

// Addr is any kind of network address represented as a fixed-size byte
// string, so that addresses of different families compose uniformly inside
// strict-encoded messages.
type Addr struct {
	Format    Format
	Payload   [33]byte
	Port      uint16
	Transport Transport
}

// FromIP builds an address from an IP, normalizing IPv4-mapped forms.
func FromIP(ip net.IP, port uint16, transport Transport) (Addr, error) {
	a := Addr{Port: port, Transport: transport}
	if v4 := ip.To4(); v4 != nil {
		a.Format = FormatIPv4
		copy(a.Payload[:4], v4)
		return a, nil
	}
	if v6 := ip.To16(); v6 != nil {
		a.Format = FormatIPv6
		copy(a.Payload[:16], v6)
		return a, nil
	}
	return Addr{}, errors.InvalidValue(errors.PhaseEncode, "uniform address", ip, "not an IPv4 or IPv6 address")
}

// FromKey builds a key-addressed endpoint (onion v3, X25519 or Ed25519).
func FromKey(format Format, key [32]byte, port uint16, transport Transport) (Addr, error) {
	switch format {
	case FormatOnionV3, FormatX25519, FormatEd25519:
	default:
		return Addr{}, errors.InvalidValue(errors.PhaseEncode, "uniform address", format, "format does not carry a 32-byte key")
	}
	a := Addr{Format: format, Port: port, Transport: transport}
	copy(a.Payload[:32], key[:])
	return a, nil
}

// FromX25519Secret derives the X25519 public key for secret and returns the
// corresponding address.
func FromX25519Secret(secret []byte, port uint16, transport Transport) (Addr, error) {
	pub, err := curve25519.X25519(secret, curve25519.Basepoint)
	if err != nil {
		return Addr{}, errors.InvalidValue(errors.PhaseEncode, "uniform address", nil, "invalid X25519 secret: "+err.Error())
	}
	var key [32]byte
	copy(key[:], pub)
	return FromKey(FormatX25519, key, port, transport)
}

// IP returns the address as a net.IP, or nil for key-addressed formats.
func (a Addr) IP() net.IP {
	switch a.Format {
	case FormatIPv4:
		return net.IP(a.Payload[:4])
	case FormatIPv6:
		return net.IP(a.Payload[:16])
	default:
		return nil
	}
}

// Key returns the 32-byte key for key-addressed formats; ok is false for IP
// formats.
func (a Addr) Key() (key [32]byte, ok bool) {
	switch a.Format {
	case FormatOnionV3, FormatX25519, FormatEd25519:
		copy(key[:], a.Payload[:32])
		return key, true
	default:
		return key, false
	}
}

func (a Addr) StrictEncode(w io.Writer) (int, error) {
	if err := a.validate(errors.PhaseEncode); err != nil {
		return 0, err
	}
	var b [EncodedLen]byte
	b[0] = uint8(a.Format)
	copy(b[1:34], a.Payload[:])
	b[34] = uint8(a.Port)
	b[35] = uint8(a.Port >> 8)
	b[36] = uint8(a.Transport)
	return strict.WriteRaw(w, b[:])
}

func (a *Addr) StrictDecode(r io.Reader) error {
	var b [EncodedLen]byte
	if err := strict.ReadRaw(r, b[:]); err != nil {
		return errors.Pathed(err, "uniform address")
	}
	decoded := Addr{
		Format:    Format(b[0]),
		Port:      uint16(b[34]) | uint16(b[35])<<8,
		Transport: Transport(b[36]),
	}
	copy(decoded.Payload[:], b[1:34])
	if err := decoded.validate(errors.PhaseDecode); err != nil {
		return err
	}
	*a = decoded
	return nil
}

// validate enforces the fail-closed rules shared by both directions: known
// format and transport bytes, and zeroed payload tail beyond the format's
// significant length, so each address has exactly one encoding.
func (a Addr) validate(phase errors.Phase) error {
	var significant int
	switch a.Format {
	case FormatIPv4:
		significant = 4
	case FormatIPv6:
		significant = 16
	case FormatOnionV3, FormatX25519, FormatEd25519:
		significant = 32
	default:
		return errors.InvalidValue(phase, "uniform address", uint8(a.Format), "unknown address format")
	}
	switch a.Transport {
	case TransportTCP, TransportUDP, TransportQUIC:
	default:
		return errors.InvalidValue(phase, "uniform address", uint8(a.Transport), "unknown transport")
	}
	for _, b := range a.Payload[significant:] {
		if b != 0 {
			return errors.InvalidValue(phase, "uniform address", a.Format, "payload bytes beyond the format's length must be zero")
		}
	}
	return nil
}
