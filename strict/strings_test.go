package strict

import (
	"bytes"
	"strings"
	"testing"

	strerr "github.com/youkchan/strict-encoding/errors"
)

func TestWriteString_KnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []byte
	}{
		{"empty", "", []byte{0x00, 0x00}},
		{"ascii", "abc", []byte{0x03, 0x00, 'a', 'b', 'c'}},
		{"utf8", "é", []byte{0x02, 0x00, 0xC3, 0xA9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := WriteString(&buf, tt.value)
			if err != nil {
				t.Fatalf("WriteString(%q) error: %v", tt.value, err)
			}
			if n != len(tt.want) {
				t.Errorf("WriteString(%q) wrote %d bytes, want %d", tt.value, n, len(tt.want))
			}
			if !bytes.Equal(buf.Bytes(), tt.want) {
				t.Errorf("WriteString(%q) = %x, want %x", tt.value, buf.Bytes(), tt.want)
			}
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "héllo wörld", strings.Repeat("x", 1000)} {
		var buf bytes.Buffer
		if _, err := WriteString(&buf, s); err != nil {
			t.Fatalf("WriteString(%q) error: %v", s, err)
		}
		got, err := ReadString(&buf)
		if err != nil {
			t.Fatalf("ReadString error: %v", err)
		}
		if got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestWriteString_RejectsInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteString(&buf, string([]byte{0xFF, 0xFE}))
	if err == nil {
		t.Fatal("WriteString on invalid UTF-8 succeeded, want error")
	}
	if strerr.KindOf(err) != strerr.KindInvalidUTF8 {
		t.Errorf("kind = %v, want InvalidUTF8", strerr.KindOf(err))
	}
	if strerr.PhaseOf(err) != strerr.PhaseEncode {
		t.Errorf("phase = %v, want Encode", strerr.PhaseOf(err))
	}
}

func TestReadString_RejectsInvalidUTF8(t *testing.T) {
	// Valid length prefix, invalid payload.
	_, err := ReadString(bytes.NewReader([]byte{0x02, 0x00, 0xFF, 0xFE}))
	if err == nil {
		t.Fatal("ReadString on invalid UTF-8 succeeded, want error")
	}
	if strerr.KindOf(err) != strerr.KindInvalidUTF8 {
		t.Errorf("kind = %v, want InvalidUTF8", strerr.KindOf(err))
	}
	if strerr.PhaseOf(err) != strerr.PhaseDecode {
		t.Errorf("phase = %v, want Decode", strerr.PhaseOf(err))
	}
}

func TestReadString_Truncated(t *testing.T) {
	// Prefix claims 5 bytes, payload has 2.
	_, err := ReadString(bytes.NewReader([]byte{0x05, 0x00, 'a', 'b'}))
	if err == nil {
		t.Fatal("ReadString on truncated input succeeded, want error")
	}
	if strerr.KindOf(err) != strerr.KindUnexpectedEOF {
		t.Errorf("kind = %v, want UnexpectedEOF", strerr.KindOf(err))
	}
}

func TestWriteString_TooLong(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteString(&buf, strings.Repeat("x", MaxItems+1))
	if err == nil {
		t.Fatal("WriteString over MaxItems succeeded, want error")
	}
	if strerr.KindOf(err) != strerr.KindTooManyElements {
		t.Errorf("kind = %v, want TooManyElements", strerr.KindOf(err))
	}
}

func TestByteSeq_RoundTrip(t *testing.T) {
	for _, b := range [][]byte{{}, {0x00}, {0xDE, 0xAD, 0xBE, 0xEF}} {
		var buf bytes.Buffer
		if _, err := WriteByteSeq(&buf, b); err != nil {
			t.Fatalf("WriteByteSeq(%x) error: %v", b, err)
		}
		got, err := ReadByteSeq(&buf)
		if err != nil {
			t.Fatalf("ReadByteSeq error: %v", err)
		}
		if !bytes.Equal(got, b) {
			t.Errorf("round trip %x -> %x", b, got)
		}
	}
}

func TestWriteByteSeq_MaxLength(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteByteSeq(&buf, make([]byte, MaxItems)); err != nil {
		t.Fatalf("WriteByteSeq at MaxItems error: %v", err)
	}
	buf.Reset()
	if _, err := WriteByteSeq(&buf, make([]byte, MaxItems+1)); err == nil {
		t.Fatal("WriteByteSeq over MaxItems succeeded, want error")
	}
}
