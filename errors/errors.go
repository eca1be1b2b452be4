package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // plaintext to ciphertext
	PhaseDecode   Phase = "decode"   // ciphertext to plaintext
	PhaseDetect   Phase = "detect"   // wire format detection
	PhaseValidate Phase = "validate" // ciphertext validation
	PhaseChecksum Phase = "checksum" // CRC-32 wire form handling
)

// Kind categorizes the error
type Kind string

const (
	KindFormat           Kind = "format"            // length fits no known wire shape
	KindInvalidSymbol    Kind = "invalid_symbol"    // character outside the alphabet
	KindInvalidUTF8      Kind = "invalid_utf8"      // recovered bytes are not UTF-8
	KindChecksumMismatch Kind = "checksum_mismatch" // CRC-32 disagreement
	KindBadLength        Kind = "bad_length"        // checksum block is not 16 symbols
	KindInvalidInput     Kind = "invalid_input"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Detail   string
	Position int // 1-based character position, 0 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Position > 0 {
		fmt.Fprintf(&b, " at position %d", e.Position)
	}

	if e.Detail != "" {
		b.WriteString(": ")
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

// Position sets the 1-based character position
func (b *Builder) Position(pos int) *Builder {
	b.err.Position = pos
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

// Format creates an error for a ciphertext whose length fits no wire shape
func Format(phase Phase, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFormat,
		Detail: fmt.Sprintf("ciphertext length %d matches no known format", length),
		Value:  length,
	}
}

// InvalidSymbol creates an error for a character outside the alphabet.
// pos is 1-based.
func InvalidSymbol(phase Phase, pos int, c rune) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidSymbol,
		Position: pos,
		Detail:   fmt.Sprintf("invalid character %q (position: %d)", c, pos),
		Value:    c,
	}
}

// InvalidUTF8 creates an error for recovered bytes that are not valid
// UTF-8, carrying the raw values in decimal and hex for diagnosis
func InvalidUTF8(phase Phase, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	dec := make([]string, len(preview))
	for i, b := range preview {
		dec[i] = fmt.Sprintf("%d", b)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: bytes [%s] (hex % x)", strings.Join(dec, " "), preview),
		Value:  preview,
	}
}

// ChecksumMismatch creates an integrity failure carrying both checksum
// values in hex
func ChecksumMismatch(want, got uint32) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindChecksumMismatch,
		Detail: fmt.Sprintf("checksum mismatch: expected 0x%08X, actual 0x%08X", want, got),
		Value:  got,
	}
}

// BadLength creates an error for a checksum block that is not exactly the
// required number of symbols
func BadLength(want, got int) *Error {
	return &Error{
		Phase:  PhaseChecksum,
		Kind:   KindBadLength,
		Detail: fmt.Sprintf("checksum block must be %d symbols, got %d", want, got),
		Value:  got,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
