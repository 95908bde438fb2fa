// Package shellerr defines ShellError, the typed error value that travels
// through pipelines, either returned from a coercion or embedded in a value.
package shellerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/myty/nushell/pkg/diag"
	"github.com/myty/nushell/pkg/hash"
)

// Kind identifies the shape of a ShellError.
type Kind string

// Possible Kind values.
const (
	// A value has a different type than the one needed. Uses Expected and
	// Actual.
	TypeMismatch Kind = "type-mismatch"
	// A value is of the right type but cannot be represented in the needed
	// range. Uses Expected, Actual and Operation.
	Range Kind = "range"
	// Two values cannot be coerced to a common type. Uses Actual and Other.
	Coerce Kind = "coerce"
	// An error with a message and a label pointing into the source. Uses
	// Message, Label and Span.
	Labeled Kind = "labeled"
	// An error with no location. Uses Message.
	UntaggedRuntime Kind = "untagged-runtime"
	// The input ended while more was expected. Uses Expected and Span.
	UnexpectedEOF Kind = "unexpected-eof"
)

// ShellError is a typed error that carries its own location. Which fields are
// meaningful depends on Kind; the others are left zero.
type ShellError struct {
	Kind      Kind                 `json:"kind" yaml:"kind"`
	Expected  string               `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual    diag.Spanned[string] `json:"actual" yaml:"actual"`
	Other     diag.Spanned[string] `json:"other" yaml:"other"`
	Operation string               `json:"operation,omitempty" yaml:"operation,omitempty"`
	Message   string               `json:"message,omitempty" yaml:"message,omitempty"`
	Label     string               `json:"label,omitempty" yaml:"label,omitempty"`
	Span      diag.Span            `json:"span" yaml:"span"`
	Cause     *ShellError          `json:"cause,omitempty" yaml:"cause,omitempty"`
}

// NewTypeError returns an error saying that a value of the expected type was
// needed, but actual was found instead.
func NewTypeError(expected string, actual diag.Spanned[string]) *ShellError {
	return &ShellError{Kind: TypeMismatch, Expected: expected, Actual: actual}
}

// NewRangeError returns an error saying that actual does not fit in the
// expected range while doing operation.
func NewRangeError(expected string, actual diag.Spanned[string], operation string) *ShellError {
	return &ShellError{Kind: Range, Expected: expected, Actual: actual, Operation: operation}
}

// NewCoerceError returns an error saying that left and right cannot be
// coerced to a common type.
func NewCoerceError(left, right diag.Spanned[string]) *ShellError {
	return &ShellError{Kind: Coerce, Actual: left, Other: right}
}

// NewLabeled returns an error with a message and a label at the given span.
func NewLabeled(msg, label string, s diag.Span) *ShellError {
	return &ShellError{Kind: Labeled, Message: msg, Label: label, Span: s}
}

// NewUntaggedRuntime returns an error with no location.
func NewUntaggedRuntime(msg string) *ShellError {
	return &ShellError{Kind: UntaggedRuntime, Message: msg}
}

// NewUnexpectedEOF returns an error saying that the input ended at s while
// expected was still needed.
func NewUnexpectedEOF(expected string, s diag.Span) *ShellError {
	return &ShellError{Kind: UnexpectedEOF, Expected: expected, Span: s}
}

// WithCause returns a copy of e with the given cause attached.
func (e *ShellError) WithCause(cause *ShellError) *ShellError {
	c := *e
	c.Cause = cause
	return &c
}

// Error returns a plain text representation of the error.
func (e *ShellError) Error() string {
	var sb strings.Builder
	switch e.Kind {
	case TypeMismatch:
		fmt.Fprintf(&sb, "type error: expected %s, found %s", e.Expected, e.Actual.Item)
	case Range:
		fmt.Fprintf(&sb, "range error: expected %s, found %s while %s",
			e.Expected, e.Actual.Item, e.Operation)
	case Coerce:
		fmt.Fprintf(&sb, "coercion error: cannot coerce %s and %s", e.Actual.Item, e.Other.Item)
	case Labeled:
		fmt.Fprintf(&sb, "%s: %s", e.Message, e.Label)
	case UnexpectedEOF:
		fmt.Fprintf(&sb, "unexpected end of input: expected %s", e.Expected)
	default:
		sb.WriteString(e.Message)
	}
	if s := e.Location(); !s.IsUnknown() {
		fmt.Fprintf(&sb, " (at %d-%d)", s.Start, s.End)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the cause of the error, if any.
func (e *ShellError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is a *ShellError with the same content, so that
// errors.Is can match errors built independently.
func (e *ShellError) Is(target error) bool {
	var t *ShellError
	return errors.As(target, &t) && e.Equal(t)
}

// Location returns the span the error points to.
func (e *ShellError) Location() diag.Span {
	switch e.Kind {
	case TypeMismatch, Range, Coerce:
		return e.Actual.Span
	case UntaggedRuntime:
		return diag.UnknownSpan()
	default:
		return e.Span
	}
}

// Show shows the error along with the excerpt of the named source it points
// to. Use InSource to get an error that implements diag.Shower.
func (e *ShellError) Show(name, source, indent string) string {
	header := "\033[31;1m" + e.summary() + "\033[m"
	s := e.Location()
	if source == "" || s.IsUnknown() {
		return header
	}
	return header + "\n" + indent + diag.NewContext(name, source, s).ShowCompact(indent+"  ")
}

func (e *ShellError) summary() string {
	saved := *e
	saved.Cause = nil
	saved.Actual.Span, saved.Span = diag.Span{}, diag.Span{}
	return saved.Error()
}

// InSource binds e to a named source so that it can be shown with
// diag.ShowError.
func InSource(e *ShellError, name, source string) error {
	return sourced{e, name, source}
}

type sourced struct {
	*ShellError
	name, source string
}

func (s sourced) Show(indent string) string { return s.ShellError.Show(s.name, s.source, indent) }

func (s sourced) Unwrap() error { return s.ShellError }

// Equal reports whether two errors have the same content, including
// locations and causes.
func (e *ShellError) Equal(other *ShellError) bool { return Compare(e, other) == 0 }

// Compare orders two errors field by field, in declaration order. A nil error
// sorts before any non-nil one.
func Compare(a, b *ShellError) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := strings.Compare(string(a.Kind), string(b.Kind)); c != 0 {
		return c
	}
	if c := strings.Compare(a.Expected, b.Expected); c != 0 {
		return c
	}
	if c := compareSpanned(a.Actual, b.Actual); c != 0 {
		return c
	}
	if c := compareSpanned(a.Other, b.Other); c != 0 {
		return c
	}
	for _, pair := range [][2]string{
		{a.Operation, b.Operation}, {a.Message, b.Message}, {a.Label, b.Label}} {
		if c := strings.Compare(pair[0], pair[1]); c != 0 {
			return c
		}
	}
	if c := a.Span.Compare(b.Span); c != 0 {
		return c
	}
	return Compare(a.Cause, b.Cause)
}

func compareSpanned(a, b diag.Spanned[string]) int {
	if c := strings.Compare(a.Item, b.Item); c != 0 {
		return c
	}
	return a.Span.Compare(b.Span)
}

// Hash returns a hash consistent with Equal.
func (e *ShellError) Hash() uint32 {
	if e == nil {
		return 0
	}
	return hash.DJB(
		hash.String(string(e.Kind)), hash.String(e.Expected),
		hash.String(e.Actual.Item), e.Actual.Span.Hash(),
		hash.String(e.Other.Item), e.Other.Span.Hash(),
		hash.String(e.Operation), hash.String(e.Message), hash.String(e.Label),
		e.Span.Hash(), e.Cause.Hash())
}

// Clone returns a deep copy of e.
func (e *ShellError) Clone() *ShellError {
	if e == nil {
		return nil
	}
	c := *e
	c.Cause = e.Cause.Clone()
	return &c
}
