// Package prog provides the entry point to nuvalue. Its subpackages correspond
// to subprograms of nuvalue.
package prog

// This package parses the command line, loads the configuration and calls
// the appropriate "subprogram", one of the stash commands or the renderer.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/myty/nushell/pkg/config"
	"github.com/myty/nushell/pkg/logutil"
)

var logger = logutil.GetLogger("[prog] ")

// Version is the version of nuvalue.
const Version = "0.1.0"

// Flags keeps command-line flags, with unset flags filled in from the
// configuration file.
type Flags struct {
	Log, Config, DB string

	Help, Version bool

	In, Out, Color string
	Width          int

	Save, Load, Del string
	List            bool
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("nuvalue", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.StringVar(&f.Config, "config", "", "path to the configuration file")
	fs.StringVar(&f.DB, "db", "", "path to the stash database")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")

	fs.StringVar(&f.In, "in", "json", "format of the input: json or yaml")
	fs.StringVar(&f.Out, "out", "table", "format of the output: table, json or yaml")
	fs.StringVar(&f.Color, "color", "auto", "when to color table headers: auto, always or never")
	fs.IntVar(&f.Width, "width", 0, "maximum table width; 0 means the terminal width")

	fs.StringVar(&f.Save, "save", "", "store the input in the stash under the given name")
	fs.StringVar(&f.Load, "load", "", "use the value stored under the given name as the input")
	fs.StringVar(&f.Del, "del", "", "delete the value stored under the given name")
	fs.BoolVar(&f.List, "list", false, "list the names of stored values")

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: nuvalue [flags] [file...]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// applyConfig fills in the flags that were not given on the command line.
func applyConfig(f *Flags, fs *flag.FlagSet, cfg config.Config) {
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if !set["width"] {
		f.Width = cfg.Table.Width
	}
	if !set["color"] {
		f.Color = cfg.Table.Color
	}
	if !set["db"] {
		f.DB = cfg.Store.Path
	}
	if !set["log"] {
		f.Log = cfg.Log.File
	}
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. nuvalue defines -help, but not -h;
			// so this means that -h has been requested. Handle this by
			// printing the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}
	if f.Version {
		fmt.Fprintln(fds[1], Version)
		return 0
	}

	cfgPath := f.Config
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}
	applyConfig(f, fs, cfg)
	if err := (config.Config{Table: config.Table{Width: f.Width, Color: f.Color}}).Validate(); err != nil {
		fmt.Fprintln(fds[2], err)
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	logger.Debugf("running with flags %+v and arguments %q", *f, fs.Args())

	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var bu badUsageError
	var ee exitError
	switch {
	case errors.As(err, &bu):
		usage(fds[2], fs)
	case errors.As(err, &ee):
		return ee.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return NotSuitable().
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
