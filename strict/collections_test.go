package strict

import (
	"bytes"
	"reflect"
	"testing"

	strerr "github.com/youkchan/strict-encoding/errors"
)

func TestWriteSeq_KnownVector(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteSeq(&buf, []U16{300, 1})
	if err != nil {
		t.Fatalf("WriteSeq error: %v", err)
	}
	want := []byte{0x02, 0x00, 0x2C, 0x01, 0x01, 0x00}
	if n != len(want) || !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteSeq = %x (n=%d), want %x", buf.Bytes(), n, want)
	}
}

func TestSeq_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		items []U16
	}{
		{"empty", []U16{}},
		{"one", []U16{42}},
		{"many", []U16{300, 1, 0xFFFF, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if _, err := WriteSeq(&buf, tt.items); err != nil {
				t.Fatalf("WriteSeq error: %v", err)
			}
			got, err := ReadSeq[U16](&buf)
			if err != nil {
				t.Fatalf("ReadSeq error: %v", err)
			}
			if len(got) != len(tt.items) {
				t.Fatalf("ReadSeq len = %d, want %d", len(got), len(tt.items))
			}
			for i := range got {
				if got[i] != tt.items[i] {
					t.Errorf("item %d = %d, want %d", i, got[i], tt.items[i])
				}
			}
		})
	}
}

func TestReadSeq_TruncatedAfterPrefix(t *testing.T) {
	// Prefix claims three u16 elements, input carries one.
	_, err := ReadSeq[U16](bytes.NewReader([]byte{0x03, 0x00, 0x2C, 0x01}))
	if err == nil {
		t.Fatal("ReadSeq on truncated input succeeded, want error")
	}
	if strerr.KindOf(err) != strerr.KindUnexpectedEOF {
		t.Errorf("kind = %v, want UnexpectedEOF", strerr.KindOf(err))
	}
}

func TestReadSeq_HostileLengthPrefix(t *testing.T) {
	// A maximal count with no payload must fail fast, not allocate 65535
	// elements up front.
	_, err := ReadSeq[U64](bytes.NewReader([]byte{0xFF, 0xFF}))
	if err == nil {
		t.Fatal("ReadSeq on empty payload succeeded, want error")
	}
	if strerr.KindOf(err) != strerr.KindUnexpectedEOF {
		t.Errorf("kind = %v, want UnexpectedEOF", strerr.KindOf(err))
	}
}

func TestFixedSeq_NoPrefix(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteFixedSeq(&buf, []U8{0xAA, 0xBB}); err != nil {
		t.Fatalf("WriteFixedSeq error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0xAA, 0xBB}) {
		t.Errorf("WriteFixedSeq = %x, want aabb", buf.Bytes())
	}

	dst := make([]U8, 2)
	if err := ReadFixedSeq[U8](bytes.NewReader([]byte{0xAA, 0xBB}), dst); err != nil {
		t.Fatalf("ReadFixedSeq error: %v", err)
	}
	if dst[0] != 0xAA || dst[1] != 0xBB {
		t.Errorf("ReadFixedSeq = %v", dst)
	}
}

func TestWriteMap_DeterministicAcrossInsertionOrders(t *testing.T) {
	a := map[U16]Str{1: "a", 2: "b", 256: "c"}
	b := map[U16]Str{}
	b[256] = "c"
	b[1] = "a"
	b[2] = "b"

	var bufA, bufB bytes.Buffer
	if _, err := WriteMap(&bufA, a); err != nil {
		t.Fatalf("WriteMap(a) error: %v", err)
	}
	if _, err := WriteMap(&bufB, b); err != nil {
		t.Fatalf("WriteMap(b) error: %v", err)
	}
	if !bytes.Equal(bufA.Bytes(), bufB.Bytes()) {
		t.Errorf("insertion order changed encoding: %x vs %x", bufA.Bytes(), bufB.Bytes())
	}

	// The encoded bytes decide the order, not the integers: 256 encodes as
	// 0x00 0x01 and sorts before 1 (0x01 0x00) and 2 (0x02 0x00).
	want := []byte{
		0x03, 0x00,
		0x00, 0x01, 0x01, 0x00, 'c', // key 256 = 0001
		0x01, 0x00, 0x01, 0x00, 'a', // key 1 = 0100
		0x02, 0x00, 0x01, 0x00, 'b', // key 2 = 0200
	}
	if !bytes.Equal(bufA.Bytes(), want) {
		t.Errorf("WriteMap = %x, want %x", bufA.Bytes(), want)
	}
}

func TestMap_RoundTrip(t *testing.T) {
	m := map[U16]Str{1: "a", 2: "b", 0xFFFF: "z"}
	var buf bytes.Buffer
	if _, err := WriteMap(&buf, m); err != nil {
		t.Fatalf("WriteMap error: %v", err)
	}
	got, err := ReadMap[U16, Str](&buf)
	if err != nil {
		t.Fatalf("ReadMap error: %v", err)
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip %v -> %v", m, got)
	}
}

func TestReadMap_RejectsDuplicateKey(t *testing.T) {
	data := []byte{
		0x02, 0x00,
		0x01, 0x00, 0x01, 0x00, 'a',
		0x01, 0x00, 0x01, 0x00, 'b',
	}
	_, err := ReadMap[U16, Str](bytes.NewReader(data))
	if err == nil {
		t.Fatal("ReadMap with duplicate key succeeded, want error")
	}
	if strerr.KindOf(err) != strerr.KindRepeatedKey {
		t.Errorf("kind = %v, want RepeatedKey", strerr.KindOf(err))
	}
}

func TestReadMap_RejectsOutOfOrderKeys(t *testing.T) {
	data := []byte{
		0x02, 0x00,
		0x02, 0x00, 0x01, 0x00, 'b',
		0x01, 0x00, 0x01, 0x00, 'a',
	}
	_, err := ReadMap[U16, Str](bytes.NewReader(data))
	if err == nil {
		t.Fatal("ReadMap with out-of-order keys succeeded, want error")
	}
	if strerr.KindOf(err) != strerr.KindInvalidValue {
		t.Errorf("kind = %v, want InvalidValue", strerr.KindOf(err))
	}
}

func TestReadMap_Empty(t *testing.T) {
	got, err := ReadMap[U16, Str](bytes.NewReader([]byte{0x00, 0x00}))
	if err != nil {
		t.Fatalf("ReadMap error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadMap = %v, want empty", got)
	}
}
