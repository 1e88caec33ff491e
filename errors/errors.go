package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode Phase = "encode" // value to bytes
	PhaseDecode Phase = "decode" // bytes to value
	PhaseDerive Phase = "derive" // type description construction
)

// Kind categorizes the error
type Kind string

const (
	KindUnexpectedEOF   Kind = "unexpected_eof"
	KindInvalidValue    Kind = "invalid_value"
	KindUnknownVariant  Kind = "unknown_variant"
	KindInvalidUTF8     Kind = "invalid_utf8"
	KindRepeatedKey     Kind = "repeated_key"
	KindTrailingData    Kind = "trailing_data"
	KindTooManyElements Kind = "too_many_elements"
	KindValueOutOfRange Kind = "value_out_of_range"
	KindIO              Kind = "io"

	KindDuplicateDiscriminant Kind = "duplicate_discriminant"
	KindDuplicateField        Kind = "duplicate_field"
	KindWidthOverflow         Kind = "width_overflow"
	KindUnknownType           Kind = "unknown_type"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the wire type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnexpectedEOF creates an error for a read that ran out of input before the
// fixed or declared width was satisfied. Always a decode-phase error.
func UnexpectedEOF(typ string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnexpectedEOF,
		Type:   typ,
		Detail: "input ended before value was complete",
		Cause:  cause,
	}
}

// InvalidValue creates an error for a byte pattern that is syntactically
// present but not a legal instance of its type.
func InvalidValue(phase Phase, typ string, value any, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidValue,
		Type:   typ,
		Value:  value,
		Detail: detail,
	}
}

// UnknownVariant creates an error for a discriminant that matches no declared
// variant of a union.
func UnknownVariant(union string, disc uint64) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnknownVariant,
		Type:   union,
		Value:  disc,
		Detail: fmt.Sprintf("discriminant %d matches no declared variant", disc),
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Type:   "string",
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// RepeatedKey creates an error for a duplicate key in an associative
// container, which a canonical encoding never contains.
func RepeatedKey(phase Phase, typ string, key any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRepeatedKey,
		Type:   typ,
		Value:  key,
		Detail: "duplicate key in associative container",
	}
}

// TrailingData creates an error for unconsumed bytes after a complete
// top-level decode.
func TrailingData(remaining int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTrailingData,
		Value:  remaining,
		Detail: fmt.Sprintf("%d unconsumed byte(s) after value", remaining),
	}
}

// TooManyElements creates an encode-time error for a collection whose element
// count exceeds what the length prefix can represent.
func TooManyElements(typ string, count, max int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindTooManyElements,
		Type:   typ,
		Value:  count,
		Detail: fmt.Sprintf("%d elements exceed length prefix maximum %d", count, max),
	}
}

// OutOfRange creates an error for a value outside the representable range of
// its wire type.
func OutOfRange(phase Phase, typ string, value any, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindValueOutOfRange,
		Type:   typ,
		Value:  value,
		Detail: detail,
	}
}

// IO wraps a sink or source failure
func IO(phase Phase, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIO,
		Cause: cause,
	}
}

// Derivation-time constructors. These surface from Build on a type
// description, never during encode or decode execution.

// DuplicateDiscriminant creates an error for two variants declared with the
// same discriminant value.
func DuplicateDiscriminant(union string, disc uint64) *Error {
	return &Error{
		Phase:  PhaseDerive,
		Kind:   KindDuplicateDiscriminant,
		Type:   union,
		Value:  disc,
		Detail: fmt.Sprintf("discriminant %d declared more than once", disc),
	}
}

// DuplicateField creates an error for two fields declared with the same name.
func DuplicateField(record, field string) *Error {
	return &Error{
		Phase:  PhaseDerive,
		Kind:   KindDuplicateField,
		Type:   record,
		Detail: fmt.Sprintf("field %q declared more than once", field),
	}
}

// WidthOverflow creates an error for a discriminant that does not fit the
// union's declared discriminant width.
func WidthOverflow(union string, width int, disc uint64) *Error {
	return &Error{
		Phase:  PhaseDerive,
		Kind:   KindWidthOverflow,
		Type:   union,
		Value:  disc,
		Detail: fmt.Sprintf("discriminant %d does not fit %d-byte width", disc, width),
	}
}

// UnknownType creates an encode-time error for a union value whose dynamic
// type was never declared as a variant.
func UnknownType(union string, goType string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnknownType,
		Type:   union,
		Detail: fmt.Sprintf("value type %s is not a declared variant", goType),
	}
}

// Pathed prepends path elements to a structured error. Non-structured errors
// pass through unchanged.
func Pathed(err error, elems ...string) error {
	var e *Error
	if stderrors.As(err, &e) {
		clone := *e
		clone.Path = append(append([]string{}, elems...), e.Path...)
		return &clone
	}
	return err
}

// KindOf returns the Kind of a structured error, or "" for any other error.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// PhaseOf returns the Phase of a structured error, or "" for any other error.
func PhaseOf(err error) Phase {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Phase
	}
	return ""
}
