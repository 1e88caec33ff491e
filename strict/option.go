package strict

import (
	"io"

	"github.com/youkchan/strict-encoding/errors"
)

// WriteOption encodes an optional value: a single presence byte, 0x00 for
// absent or 0x01 for present, followed by the payload only when present.
func WriteOption[E Encodable](w io.Writer, v *E) (int, error) {
	if v == nil {
		return WriteU8(w, 0)
	}
	total, err := WriteU8(w, 1)
	if err != nil {
		return total, err
	}
	n, err := (*v).StrictEncode(w)
	return total + n, err
}

// ReadOption decodes an optional value. Any presence byte other than 0x00 or
// 0x01 is an InvalidValue.
func ReadOption[E any, PE Ptr[E]](r io.Reader) (*E, error) {
	var b [1]byte
	if err := readExact(r, b[:], "option"); err != nil {
		return nil, err
	}
	switch b[0] {
	case 0:
		return nil, nil
	case 1:
		var e E
		if err := PE(&e).StrictDecode(r); err != nil {
			return nil, err
		}
		return &e, nil
	default:
		return nil, errors.InvalidValue(errors.PhaseDecode, "option", b[0], "presence byte must be 0 or 1")
	}
}
