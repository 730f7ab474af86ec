package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSchema  Phase = "schema"  // layout construction
	PhaseCompile Phase = "compile" // Go type binding
	PhaseEncode  Phase = "encode"  // value to bytes
	PhaseDecode  Phase = "decode"  // bytes to value
	PhaseCatalog Phase = "catalog" // record lookup
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidName          Kind = "invalid_name"
	KindUnknownVariant       Kind = "unknown_variant"
	KindInvalidDiscriminator Kind = "invalid_discriminator"
	KindBufferTooSmall       Kind = "buffer_too_small"
	KindWrongLength          Kind = "wrong_length"
	KindOutOfRange           Kind = "out_of_range"
	KindTypeMismatch         Kind = "type_mismatch"
	KindFieldMissing         Kind = "field_missing"
	KindUnsupported          Kind = "unsupported"
	KindInvalidInput         Kind = "invalid_input"
	KindNilPointer           Kind = "nil_pointer"
)

// Sentinels for errors.Is. They carry no phase and match any phase.
var (
	ErrInvalidName          = &Error{Kind: KindInvalidName}
	ErrUnknownVariant       = &Error{Kind: KindUnknownVariant}
	ErrInvalidDiscriminator = &Error{Kind: KindInvalidDiscriminator}
	ErrBufferTooSmall       = &Error{Kind: KindBufferTooSmall}
	ErrWrongLength          = &Error{Kind: KindWrongLength}
	ErrOutOfRange           = &Error{Kind: KindOutOfRange}
	ErrTypeMismatch         = &Error{Kind: KindTypeMismatch}
	ErrFieldMissing         = &Error{Kind: KindFieldMissing}
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	GoType     string
	LayoutType string
	Detail     string
	Path       []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.LayoutType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.LayoutType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", layout ")
			b.WriteString(e.LayoutType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("layout ")
			b.WriteString(e.LayoutType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.LayoutType != "" {
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

// Is reports whether target matches this error. A target without a phase
// matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
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

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// LayoutType sets the layout kind name
func (b *Builder) LayoutType(t string) *Builder {
	b.err.LayoutType = t
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

// InvalidName creates an unknown record or variant name error
func InvalidName(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidName,
		Detail: fmt.Sprintf("unknown %s %q", what, name),
		Value:  name,
	}
}

// UnknownVariant creates an unregistered union tag error
func UnknownVariant(phase Phase, path []string, tag uint8) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownVariant,
		Path:   path,
		Detail: fmt.Sprintf("no variant registered for discriminator %d", tag),
		Value:  tag,
	}
}

// InvalidDiscriminator creates an invalid presence or tag byte error
func InvalidDiscriminator(phase Phase, path []string, got uint8, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidDiscriminator,
		Path:   path,
		Detail: fmt.Sprintf("discriminator %d: %s", got, detail),
		Value:  got,
	}
}

// BufferTooSmall creates a short buffer error
func BufferTooSmall(phase Phase, path []string, need, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferTooSmall,
		Path:   path,
		Detail: fmt.Sprintf("need %d bytes, %d remaining", need, have),
		Value:  have,
	}
}

// WrongLength creates an exact-length mismatch error
func WrongLength(phase Phase, path []string, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWrongLength,
		Path:   path,
		Detail: fmt.Sprintf("expected exactly %d bytes, got %d", want, got),
		Value:  got,
	}
}

// OutOfRange creates a value-does-not-fit error
func OutOfRange(phase Phase, path []string, value any, layoutType string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindOutOfRange,
		Path:       path,
		LayoutType: layoutType,
		Detail:     fmt.Sprintf("value %v does not fit %s", value, layoutType),
		Value:      value,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, layoutType string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindTypeMismatch,
		Path:       path,
		GoType:     goType,
		LayoutType: layoutType,
	}
}

// FieldMissing creates a missing field error
func FieldMissing(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Path:   path,
		Detail: fmt.Sprintf("required field %q not found", fieldName),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Path:   path,
		GoType: goType,
		Detail: "nil pointer",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
		Cause:  cause,
	}
}

// WithPath returns a copy of err with prefix prepended to its path. Other
// errors are returned unchanged.
func WithPath(err error, prefix ...string) error {
	e, ok := err.(*Error)
	if !ok || len(prefix) == 0 {
		return err
	}
	cp := *e
	cp.Path = append(append(make([]string, 0, len(prefix)+len(e.Path)), prefix...), e.Path...)
	return &cp
}
