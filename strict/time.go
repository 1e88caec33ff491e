package strict

import (
	"io"
	"math"
	"time"

	"github.com/youkchan/strict-encoding/errors"
)

// Durations are encoded as u64 whole seconds followed by u32 subsecond
// nanoseconds. Timestamps are i64 unix seconds, UTC; subsecond precision is
// deliberately not part of the wire form.

// WriteDuration encodes a non-negative duration. Negative durations have no
// canonical form and fail before any byte is written.
func WriteDuration(w io.Writer, d time.Duration) (int, error) {
	if d < 0 {
		return 0, errors.OutOfRange(errors.PhaseEncode, "duration", d, "negative duration has no canonical form")
	}
	total, err := WriteU64(w, uint64(d/time.Second))
	if err != nil {
		return total, err
	}
	n, err := WriteU32(w, uint32(d%time.Second))
	return total + n, err
}

// ReadDuration decodes a duration. A nanosecond field of 1e9 or more is not
// canonical (the same span has a shorter-seconds form) and is rejected, as
// is a span beyond the representable range.
func ReadDuration(r io.Reader) (time.Duration, error) {
	secs, err := ReadU64(r)
	if err != nil {
		return 0, errors.Pathed(err, "duration")
	}
	nanos, err := ReadU32(r)
	if err != nil {
		return 0, errors.Pathed(err, "duration")
	}
	if nanos >= uint32(time.Second) {
		return 0, errors.InvalidValue(errors.PhaseDecode, "duration", nanos, "subsecond nanoseconds must be below 1e9")
	}
	if secs > uint64(math.MaxInt64/int64(time.Second)) {
		return 0, errors.OutOfRange(errors.PhaseDecode, "duration", secs, "seconds exceed representable range")
	}
	return time.Duration(secs)*time.Second + time.Duration(nanos), nil
}

// WriteTime encodes t as its unix timestamp in seconds.
func WriteTime(w io.Writer, t time.Time) (int, error) {
	return WriteI64(w, t.Unix())
}

// ReadTime decodes a unix-seconds timestamp in UTC.
func ReadTime(r io.Reader) (time.Time, error) {
	sec, err := ReadI64(r)
	if err != nil {
		return time.Time{}, errors.Pathed(err, "timestamp")
	}
	return time.Unix(sec, 0).UTC(), nil
}

// Duration is the capability-contract wrapper for time.Duration.
type Duration time.Duration

func (v Duration) StrictEncode(w io.Writer) (int, error) {
	return WriteDuration(w, time.Duration(v))
}

func (v *Duration) StrictDecode(r io.Reader) error {
	d, err := ReadDuration(r)
	if err != nil {
		return err
	}
	*v = Duration(d)
	return nil
}

// Time is the capability-contract wrapper for time.Time.
type Time time.Time

func (v Time) StrictEncode(w io.Writer) (int, error) {
	return WriteTime(w, time.Time(v))
}

func (v *Time) StrictDecode(r io.Reader) error {
	t, err := ReadTime(r)
	if err != nil {
		return err
	}
	*v = Time(t)
	return nil
}
