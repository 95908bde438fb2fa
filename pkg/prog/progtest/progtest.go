// Package progtest contains utilities for testing [prog.Program] instances.
package progtest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/myty/nushell/pkg/must"
	"github.com/myty/nushell/pkg/prog"
)

// Case is a test case of a program invocation, built with ThatNuvalue and
// its methods.
type Case struct {
	args  []string
	stdin string
	check []func(t *testing.T, r result)
}

type result struct {
	exit           int
	stdout, stderr string
}

// ThatNuvalue returns a case that invokes the program with the given
// command-line arguments.
func ThatNuvalue(args ...string) *Case {
	return &Case{args: append([]string{"nuvalue"}, args...)}
}

// WithStdin sets the content of the standard input.
func (c *Case) WithStdin(s string) *Case {
	c.stdin = s
	return c
}

// ExitsWith requires the program to exit with the given code.
func (c *Case) ExitsWith(exit int) *Case {
	return c.add(func(t *testing.T, r result) {
		if r.exit != exit {
			t.Errorf("got exit %v, want %v", r.exit, exit)
		}
	})
}

// DoesNothing requires the program to exit with 0 and write nothing.
func (c *Case) DoesNothing() *Case {
	return c.ExitsWith(0).WritesStdout("").WritesStderr("")
}

// WritesStdout requires the standard output to be exactly s.
func (c *Case) WritesStdout(s string) *Case {
	return c.add(func(t *testing.T, r result) {
		if r.stdout != s {
			t.Errorf("got stdout %q, want %q", r.stdout, s)
		}
	})
}

// WritesStdoutContaining requires the standard output to contain s.
func (c *Case) WritesStdoutContaining(s string) *Case {
	return c.add(func(t *testing.T, r result) {
		if !strings.Contains(r.stdout, s) {
			t.Errorf("got stdout %q, want output containing %q", r.stdout, s)
		}
	})
}

// WritesStderr requires the standard error to be exactly s.
func (c *Case) WritesStderr(s string) *Case {
	return c.add(func(t *testing.T, r result) {
		if r.stderr != s {
			t.Errorf("got stderr %q, want %q", r.stderr, s)
		}
	})
}

// WritesStderrContaining requires the standard error to contain s.
func (c *Case) WritesStderrContaining(s string) *Case {
	return c.add(func(t *testing.T, r result) {
		if !strings.Contains(r.stderr, s) {
			t.Errorf("got stderr %q, want output containing %q", r.stderr, s)
		}
	})
}

func (c *Case) add(f func(*testing.T, result)) *Case {
	c.check = append(c.check, f)
	return c
}

// Test runs each case against the program and checks the results. The user
// configuration directory points to an empty temporary directory, so that the
// configuration of the user running the tests is not picked up.
func Test(t *testing.T, p prog.Program, cases ...*Case) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			r := run(t, p, c)
			for _, check := range c.check {
				check(t, r)
			}
		})
	}
}

// Run runs the program with the given arguments and standard input, returning
// the exit code, standard output and standard error.
func Run(t *testing.T, p prog.Program, stdin string, args ...string) (int, string, string) {
	t.Helper()
	r := run(t, p, ThatNuvalue(args...).WithStdin(stdin))
	return r.exit, r.stdout, r.stderr
}

func run(t *testing.T, p prog.Program, c *Case) result {
	stdinName := filepath.Join(t.TempDir(), "stdin")
	must.WriteFile(stdinName, c.stdin)
	stdin := must.OK1(os.Open(stdinName))
	defer stdin.Close()

	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	// Read concurrently, so that a program writing more than a pipe can
	// buffer does not block.
	outCh, errCh := readAsync(r1), readAsync(r2)
	exit := prog.Run([3]*os.File{stdin, w1, w2}, c.args, p)
	w1.Close()
	w2.Close()
	return result{exit, <-outCh, <-errCh}
}

func readAsync(f *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.ReadAllAndClose(f))
	}()
	return ch
}

// MustWriteFile writes a file in a temporary directory and returns its path.
func MustWriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	must.WriteFile(path, content)
	return path
}
