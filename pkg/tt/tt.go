// Package tt supports table-driven tests with little boilerplate.
//
// A test is a function together with a list of cases:
//
//	tt.Test(t, strings.ToUpper,
//		tt.Args("foo").Rets("FOO"),
//		tt.Args("").Rets(""),
//	)
//
// Return values are compared with go-cmp; see the test case for this package
// for more usage.
package tt

import (
	"fmt"
	"math/big"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Case represents a test case. It is created by the Args function, and offers
// setters that augment and return itself; those calls can be chained like
// Args(...).Rets(...).
type Case struct {
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value. Otherwise, cmp.Equal is used to determine matches, with the
// options returned by Options.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnDescriptor describes a function to test.
type FnDescriptor struct {
	name    string
	body    any
	argsFmt string
	retsFmt string
}

// Fn makes a new FnDescriptor with the given function body. Its name is
// derived from the body; use Named to override it.
func Fn(body any) *FnDescriptor {
	return &FnDescriptor{name: funcName(body), body: body}
}

// Named sets the name of the function shown in test error messages, and
// returns fn itself.
func (fn *FnDescriptor) Named(name string) *FnDescriptor {
	fn.name = name
	return fn
}

// ArgsFmt sets the string for formatting arguments in test error messages, and
// returns fn itself.
func (fn *FnDescriptor) ArgsFmt(s string) *FnDescriptor {
	fn.argsFmt = s
	return fn
}

// RetsFmt sets the string for formatting return values in test error messages,
// and returns fn itself.
func (fn *FnDescriptor) RetsFmt(s string) *FnDescriptor {
	fn.retsFmt = s
	return fn
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases. The fn argument is either a
// function or a *FnDescriptor.
func Test(t T, fn any, tests ...*Case) {
	t.Helper()
	desc, ok := fn.(*FnDescriptor)
	if !ok {
		desc = Fn(fn)
	}
	for _, test := range tests {
		rets := call(desc.body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if !match(retsMatcher, rets) {
				var args string
				if desc.argsFmt == "" {
					args = sprintCommaDelimited(test.args...)
				} else {
					args = fmt.Sprintf(desc.argsFmt, test.args...)
				}
				var diff string
				if desc.retsFmt == "" {
					diff = cmp.Diff(retsMatcher, rets, Options()...)
				} else {
					diff = fmt.Sprintf("-"+desc.retsFmt+"\n+"+desc.retsFmt+"\n",
						append(append([]any{}, retsMatcher...), rets...)...)
				}
				t.Errorf("%s(%s) returns (-want +got):\n%s", desc.name, args, diff)
			}
		}
	}
}

// Options returns the go-cmp options used to compare return values. Types
// with an Equal method are compared with it; errors match when errors.Is says
// so; big integers compare by value.
func Options() []cmp.Option {
	return []cmp.Option{
		cmpopts.EquateErrors(),
		cmp.Comparer(func(a, b *big.Int) bool {
			if a == nil || b == nil {
				return a == b
			}
			return a.Cmp(b) == 0
		}),
	}
}

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

// ErrorWithMessage returns a Matcher that matches any non-nil error with the
// given message.
func ErrorWithMessage(msg string) Matcher { return errorWithMessage(msg) }

type errorWithMessage string

func (m errorWithMessage) Match(v RetValue) bool {
	err, ok := v.(error)
	return ok && err.Error() == string(m)
}

func match(matchers, actual []any) bool {
	if len(matchers) != len(actual) {
		return false
	}
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return cmp.Equal(m, a, Options()...)
}

func sprintCommaDelimited(args ...any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, arg)
	}
	return b.String()
}

func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return fmt.Sprintf("%T", fn)
	}
	name := runtime.FuncForPC(v.Pointer()).Name()
	if i := strings.LastIndexByte(name, '/'); i != -1 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i != -1 {
		name = name[i+1:]
	}
	return name
}

func call(fn any, args []any) []any {
	fnType := reflect.TypeOf(fn)
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value, which cannot be
			// passed to Call. Use a zero value of the parameter type instead.
			argsReflect[i] = reflect.Zero(paramType(fnType, i))
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}

func paramType(fnType reflect.Type, i int) reflect.Type {
	if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
		return fnType.In(fnType.NumIn() - 1).Elem()
	}
	return fnType.In(i)
}
