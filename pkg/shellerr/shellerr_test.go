package shellerr

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/myty/nushell/pkg/diag"
	"github.com/myty/nushell/pkg/tt"
)

var Args = tt.Args

func spanned(s string, start, end int) diag.Spanned[string] {
	return diag.SpannedOf(s, diag.NewSpan(start, end))
}

func TestShellError_Error(t *testing.T) {
	tt.Test(t, tt.Fn((*ShellError).Error).Named("Error"),
		Args(NewTypeError("string", spanned("boolean", 3, 7))).
			Rets("type error: expected string, found boolean (at 3-7)"),
		Args(NewTypeError("string", spanned("boolean", 0, 0))).
			Rets("type error: expected string, found boolean"),
		Args(NewRangeError("u64", spanned("-1", 0, 2), "converting an integer into a 64-bit integer")).
			Rets("range error: expected u64, found -1 while converting an integer into a 64-bit integer (at 0-2)"),
		Args(NewCoerceError(spanned("string", 0, 1), spanned("integer", 4, 5))).
			Rets("coercion error: cannot coerce string and integer (at 0-1)"),
		Args(NewLabeled("Unknown column", "not in the table", diag.NewSpan(5, 9))).
			Rets("Unknown column: not in the table (at 5-9)"),
		Args(NewUntaggedRuntime("pipeline broke")).Rets("pipeline broke"),
		Args(NewUnexpectedEOF("closing bracket", diag.NewSpan(10, 10))).
			Rets("unexpected end of input: expected closing bracket (at 10-10)"),
		Args(NewUntaggedRuntime("outer").WithCause(NewUntaggedRuntime("inner"))).
			Rets("outer: inner"),
	)
}

func TestShellError_Location(t *testing.T) {
	tt.Test(t, tt.Fn((*ShellError).Location).Named("Location"),
		Args(NewTypeError("string", spanned("boolean", 3, 7))).Rets(diag.NewSpan(3, 7)),
		Args(NewLabeled("m", "l", diag.NewSpan(5, 9))).Rets(diag.NewSpan(5, 9)),
		Args(NewUntaggedRuntime("m")).Rets(diag.UnknownSpan()),
	)
}

func TestShellError_UnwrapAndIs(t *testing.T) {
	inner := NewUntaggedRuntime("inner")
	outer := NewLabeled("outer", "here", diag.NewSpan(1, 2)).WithCause(inner)

	if !errors.Is(outer, NewUntaggedRuntime("inner")) {
		t.Errorf("errors.Is does not find an equal cause")
	}
	wrapped := fmt.Errorf("decoding: %w", outer)
	var e *ShellError
	if !errors.As(wrapped, &e) || e.Kind != Labeled {
		t.Errorf("errors.As did not find the ShellError")
	}
	if errors.Is(outer, NewUntaggedRuntime("other")) {
		t.Errorf("errors.Is matched an unrelated error")
	}
}

func TestCompare(t *testing.T) {
	a := NewTypeError("string", spanned("boolean", 0, 4))
	tt.Test(t, Compare,
		Args(nil, nil).Rets(0),
		Args(nil, a).Rets(-1),
		Args(a, nil).Rets(1),
		Args(a, NewTypeError("string", spanned("boolean", 0, 4))).Rets(0),
		Args(a, NewTypeError("string", spanned("boolean", 1, 4))).Rets(-1),
		Args(a, NewTypeError("path", spanned("boolean", 0, 4))).Rets(1),
		Args(a, NewRangeError("u64", spanned("-1", 0, 2), "x")).Rets(1),
	)
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := NewLabeled("m", "l", diag.NewSpan(1, 2)).WithCause(NewUntaggedRuntime("c"))
	b := a.Clone()
	if a == b || a.Cause == b.Cause {
		t.Fatalf("Clone() did not copy")
	}
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Errorf("clone is not equal with the same hash")
	}
	b.Cause.Message = "d"
	if a.Equal(b) {
		t.Errorf("errors with different causes are equal")
	}
}

func TestShow(t *testing.T) {
	src := "ls | get foo"
	err := NewLabeled("Unknown column", "not found", diag.NewSpan(9, 12))

	var sb strings.Builder
	diag.ShowError(&sb, InSource(err, "[repl]", src))
	got := sb.String()
	for _, want := range []string{"Unknown column: not found", "[repl], line 1:", "foo"} {
		if !strings.Contains(got, want) {
			t.Errorf("ShowError wrote %q, want it to contain %q", got, want)
		}
	}

	if got := err.Show("[repl]", "", ""); strings.Contains(got, "line") {
		t.Errorf("Show without source = %q, want no position", got)
	}
}
