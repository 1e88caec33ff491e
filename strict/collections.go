package strict

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/youkchan/strict-encoding/errors"
)

// WriteSeq encodes a variable-length sequence: u16 element count, then each
// element in order. Counts above MaxItems fail before any byte is written.
func WriteSeq[E Encodable](w io.Writer, items []E) (int, error) {
	if len(items) > MaxItems {
		return 0, errors.TooManyElements("sequence", len(items), MaxItems)
	}
	total, err := WriteU16(w, uint16(len(items)))
	if err != nil {
		return total, err
	}
	for i := range items {
		n, err := items[i].StrictEncode(w)
		total += n
		if err != nil {
			return total, errors.Pathed(err, "["+strconv.Itoa(i)+"]")
		}
	}
	return total, nil
}

// ReadSeq decodes a variable-length sequence of E. Backing storage grows as
// elements actually decode, so a lying length prefix costs at most one
// element of work before UnexpectedEOF.
func ReadSeq[E any, PE Ptr[E]](r io.Reader) ([]E, error) {
	count, err := ReadU16(r)
	if err != nil {
		return nil, errors.Pathed(err, "sequence")
	}
	out := make([]E, 0, min(int(count), seqPrealloc))
	for i := 0; i < int(count); i++ {
		var elem E
		if err := PE(&elem).StrictDecode(r); err != nil {
			return nil, errors.Pathed(err, "["+strconv.Itoa(i)+"]")
		}
		out = append(out, elem)
	}
	return out, nil
}

// WriteFixedSeq encodes exactly len(items) elements with no length prefix.
// The count is a property of the caller's static type.
func WriteFixedSeq[E Encodable](w io.Writer, items []E) (int, error) {
	total := 0
	for i := range items {
		n, err := items[i].StrictEncode(w)
		total += n
		if err != nil {
			return total, errors.Pathed(err, "["+strconv.Itoa(i)+"]")
		}
	}
	return total, nil
}

// ReadFixedSeq decodes exactly len(dst) elements into dst.
func ReadFixedSeq[E any, PE Ptr[E]](r io.Reader, dst []E) error {
	for i := range dst {
		if err := PE(&dst[i]).StrictDecode(r); err != nil {
			return errors.Pathed(err, "["+strconv.Itoa(i)+"]")
		}
	}
	return nil
}

// WriteMap encodes an associative container. The canonical order is
// byte-lexicographic over each key's own canonical encoding; it is part of
// the wire contract and independent of Go's map iteration order.
func WriteMap[K MapKey, V Encodable](w io.Writer, m map[K]V) (int, error) {
	if len(m) > MaxItems {
		return 0, errors.TooManyElements("map", len(m), MaxItems)
	}

	type pair struct {
		kb []byte
		k  K
	}
	pairs := make([]pair, 0, len(m))
	for k := range m {
		kb, err := Serialize(k)
		if err != nil {
			return 0, err
		}
		pairs = append(pairs, pair{kb: kb, k: k})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return bytes.Compare(pairs[i].kb, pairs[j].kb) < 0
	})

	total, err := WriteU16(w, uint16(len(pairs)))
	if err != nil {
		return total, err
	}
	var prev []byte
	for _, p := range pairs {
		// Distinct Go keys with identical canonical encodings mean the key
		// codec is not injective; emitting them would break round-trip.
		if prev != nil && bytes.Equal(prev, p.kb) {
			return total, errors.RepeatedKey(errors.PhaseEncode, "map", fmt.Sprintf("%x", p.kb))
		}
		prev = p.kb
		if err := writeFull(w, p.kb); err != nil {
			return total, err
		}
		total += len(p.kb)
		n, err := m[p.k].StrictEncode(w)
		total += n
		if err != nil {
			return total, errors.Pathed(err, "value")
		}
	}
	return total, nil
}

// ReadMap decodes an associative container, enforcing strictly increasing
// canonical key order: a duplicate key is RepeatedKey, an out-of-order key
// is InvalidValue, since a well-formed canonical encoding has neither.
func ReadMap[K comparable, V any, PK PtrCodec[K], PV Ptr[V]](r io.Reader) (map[K]V, error) {
	count, err := ReadU16(r)
	if err != nil {
		return nil, errors.Pathed(err, "map")
	}
	m := make(map[K]V, min(int(count), seqPrealloc))
	var prev []byte
	for i := 0; i < int(count); i++ {
		var k K
		if err := PK(&k).StrictDecode(r); err != nil {
			return nil, errors.Pathed(err, "key["+strconv.Itoa(i)+"]")
		}
		kb, err := Serialize(PK(&k))
		if err != nil {
			return nil, err
		}
		if prev != nil {
			switch bytes.Compare(prev, kb) {
			case 0:
				return nil, errors.RepeatedKey(errors.PhaseDecode, "map", fmt.Sprintf("%x", kb))
			case 1:
				return nil, errors.InvalidValue(errors.PhaseDecode, "map", fmt.Sprintf("%x", kb),
					"keys out of canonical order")
			}
		}
		prev = kb
		var v V
		if err := PV(&v).StrictDecode(r); err != nil {
			return nil, errors.Pathed(err, "value["+strconv.Itoa(i)+"]")
		}
		m[k] = v
	}
	return m, nil
}
