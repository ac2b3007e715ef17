package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseBuild Phase = "build" // catalog construction and table derivation
	PhaseQuery Phase = "query" // post-freeze registry lookups
	PhaseProbe Phase = "probe" // live-runtime identity resolution
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownVersion    Kind = "unknown_version"    // version string has no canonical mapping
	KindUnknownMagic      Kind = "unknown_magic"      // magic identifier not registered
	KindUnresolvedRuntime Kind = "unresolved_runtime" // live runtime has no usable magic
	KindUnknownOpcode     Kind = "unknown_opcode"     // name or code absent from a version's table
	KindTableConsistency  Kind = "table_consistency"  // edit sequence collides with table state
)

// Kind sentinels for errors.Is matching independent of phase.
var (
	ErrUnknownVersion    = &Error{Kind: KindUnknownVersion}
	ErrUnknownMagic      = &Error{Kind: KindUnknownMagic}
	ErrUnresolvedRuntime = &Error{Kind: KindUnresolvedRuntime}
	ErrUnknownOpcode     = &Error{Kind: KindUnknownOpcode}
	ErrTableConsistency  = &Error{Kind: KindTableConsistency}
)

// Error is the structured error type used throughout the library
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Version string
	Detail  string
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

	if e.Version != "" {
		b.WriteString(" for version ")
		b.WriteString(fmt.Sprintf("%q", e.Version))
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

// Is reports whether target matches this error.
// Kind always has to match; Phase matters only when the target sets one,
// which lets the kind sentinels match errors from any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && e.Phase != t.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Is re-exports the standard library matcher so callers need a single import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As re-exports the standard library matcher so callers need a single import.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Convenience constructors for common error patterns

// UnknownVersion creates an error for a version string with no canonical mapping
func UnknownVersion(phase Phase, version string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnknownVersion,
		Version: version,
		Detail:  "no canonical mapping",
	}
}

// UnknownMagic creates an error for an unregistered magic identifier
func UnknownMagic(phase Phase, magic any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownMagic,
		Detail: fmt.Sprintf("magic %v not registered", magic),
		Value:  magic,
	}
}

// UnresolvedRuntime creates an error for a live runtime whose bytecode format
// cannot be determined. Never swallow these: downstream consumers cannot
// safely guess a format.
func UnresolvedRuntime(version string, cause error) *Error {
	return &Error{
		Phase:   PhaseProbe,
		Kind:    KindUnresolvedRuntime,
		Version: version,
		Detail:  "no magic registered for this runtime",
		Cause:   cause,
	}
}

// UnknownOpcodeName creates an error for an opcode name absent from a version's table
func UnknownOpcodeName(version, name string) *Error {
	return &Error{
		Phase:   PhaseQuery,
		Kind:    KindUnknownOpcode,
		Version: version,
		Detail:  fmt.Sprintf("no opcode named %q", name),
		Value:   name,
	}
}

// UnknownOpcodeCode creates an error for an opcode code absent from a version's table
func UnknownOpcodeCode(version string, code int) *Error {
	return &Error{
		Phase:   PhaseQuery,
		Kind:    KindUnknownOpcode,
		Version: version,
		Detail:  fmt.Sprintf("no opcode with code %d", code),
		Value:   code,
	}
}

// TableConsistency creates a table derivation error.
// These are build-time hard failures: the offending version's table, and
// anything derived from it, must not be published.
func TableConsistency(version, format string, args ...any) *Error {
	return &Error{
		Phase:   PhaseBuild,
		Kind:    KindTableConsistency,
		Version: version,
		Detail:  fmt.Sprintf(format, args...),
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
