package main

import (
	"bytes"
	"encoding/hex"
	"io"
	"net"
	"time"

	"github.com/youkchan/strict-encoding/commit"
	"github.com/youkchan/strict-encoding/derive"
	"github.com/youkchan/strict-encoding/extensions/uuidenc"
	"github.com/youkchan/strict-encoding/strict"
	"github.com/youkchan/strict-encoding/uniform"
)

// vector is one named byte string in a vector file.
type vector struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// ping and pong are the sample compound types the vectors exercise the
// derivation engine with.
type ping struct {
	Seq uint32
}

type pong struct {
	Seq  uint32
	Text string
}

var pingRecord = derive.MustRecord[ping]("Ping",
	derive.U32("seq", func(p *ping) *uint32 { return &p.Seq }),
)

var pongRecord = derive.MustRecord[pong]("Pong",
	derive.U32("seq", func(p *pong) *uint32 { return &p.Seq }),
	derive.Str("text", func(p *pong) *string { return &p.Text }),
)

func (p *ping) StrictEncode(w io.Writer) (int, error) { return pingRecord.Encode(w, p) }
func (p *ping) StrictDecode(r io.Reader) error        { return pingRecord.Decode(r, p) }
func (p *pong) StrictEncode(w io.Writer) (int, error) { return pongRecord.Encode(w, p) }
func (p *pong) StrictDecode(r io.Reader) error        { return pongRecord.Decode(r, p) }

var messageUnion = derive.NewUnion[strict.Codec]("Message").
	DiscriminantWidth(1).
	Variant("ping", func() strict.Codec { return new(ping) }).
	Variant("pong", func() strict.Codec { return new(pong) }).
	MustBuild()

// buildVectors produces every vector from the library's own codecs. The set
// is deterministic: running it twice, or on another machine, yields the same
// bytes.
func buildVectors() ([]vector, error) {
	var out []vector
	add := func(name string, data []byte, err error) error {
		if err != nil {
			return err
		}
		out = append(out, vector{Name: name, Hex: hex.EncodeToString(data)})
		return nil
	}
	enc := func(name string, v strict.Encodable) error {
		data, err := strict.Serialize(v)
		return add(name, data, err)
	}
	raw := func(name string, write func(w io.Writer) (int, error)) error {
		var buf bytes.Buffer
		_, err := write(&buf)
		return add(name, buf.Bytes(), err)
	}

	steps := []func() error{
		func() error { return enc("bool/true", strict.Bool(true)) },
		func() error { return enc("bool/false", strict.Bool(false)) },
		func() error { return enc("u8/max", strict.U8(0xFF)) },
		func() error { return enc("u16/300", strict.U16(300)) },
		func() error { return enc("u32/deadbeef", strict.U32(0xDEADBEEF)) },
		func() error { return enc("u64/max", strict.U64(1<<64-1)) },
		func() error { return enc("i64/minus-one", strict.I64(-1)) },
		func() error { return enc("f64/one", strict.F64(1.0)) },
		func() error { return enc("u128/one", strict.U128FromUint64(1)) },
		func() error { return enc("string/empty", strict.Str("")) },
		func() error { return enc("string/hello", strict.Str("hello")) },
		func() error { return enc("string/utf8", strict.Str("héllo")) },
		func() error { return enc("bytes/three", strict.Bytes{0x01, 0x02, 0x03}) },
		func() error { return enc("duration/90s", strict.Duration(90*time.Second)) },
		func() error {
			return raw("seq/u16", func(w io.Writer) (int, error) {
				return strict.WriteSeq(w, []strict.U16{300, 1})
			})
		},
		func() error {
			return raw("seq/empty", func(w io.Writer) (int, error) {
				return strict.WriteSeq(w, []strict.U16{})
			})
		},
		func() error {
			return raw("map/u16-str", func(w io.Writer) (int, error) {
				return strict.WriteMap(w, map[strict.U16]strict.Str{
					2: "b", 1: "a", 256: "c",
				})
			})
		},
		func() error {
			return raw("option/none", func(w io.Writer) (int, error) {
				return strict.WriteOption[strict.U8](w, nil)
			})
		},
		func() error {
			return raw("option/some", func(w io.Writer) (int, error) {
				v := strict.U8(7)
				return strict.WriteOption(w, &v)
			})
		},
		func() error { return enc("record/ping", &ping{Seq: 7}) },
		func() error { return enc("record/pong", &pong{Seq: 7, Text: "ok"}) },
		func() error {
			return raw("union/ping", func(w io.Writer) (int, error) {
				return messageUnion.Encode(w, &ping{Seq: 7})
			})
		},
		func() error {
			return raw("union/pong", func(w io.Writer) (int, error) {
				return messageUnion.Encode(w, &pong{Seq: 7, Text: "ok"})
			})
		},
		func() error {
			id, err := commit.Commit(&ping{Seq: 7})
			return add("commit/ping", id[:], err)
		},
		func() error {
			addr, err := uniform.FromIP(net.IPv4(127, 0, 0, 1), 9735, uniform.TransportTCP)
			if err != nil {
				return err
			}
			return enc("uniform/ipv4", addr)
		},
		func() error {
			u, err := uuidenc.Parse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
			if err != nil {
				return err
			}
			return enc("uuid/dns-namespace", u)
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return out, nil
}
