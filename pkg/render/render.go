// Package render implements the main subprogram of nuvalue: it reads encoded
// values, optionally stashes them, and writes them as a table, JSON or YAML.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/myty/nushell/pkg/diag"
	"github.com/myty/nushell/pkg/logutil"
	"github.com/myty/nushell/pkg/prog"
	"github.com/myty/nushell/pkg/shellerr"
	"github.com/myty/nushell/pkg/stash"
	"github.com/myty/nushell/pkg/store/storedefs"
	"github.com/myty/nushell/pkg/sys"
	"github.com/myty/nushell/pkg/table"
	"github.com/myty/nushell/pkg/value"
)

var logger = logutil.GetLogger("[render] ")

// Program renders its input. It runs for every invocation and should be the
// last program of a Composite.
type Program struct{}

// input is a named source of values, kept so that errors can be shown with
// an excerpt.
type input struct {
	name string
	data []byte
}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.Load != "" && len(args) > 0 {
		return prog.BadUsage("-load cannot be used with input files")
	}
	newDecoder, err := decoderFor(f.In)
	if err != nil {
		return err
	}
	writeRows, err := writerFor(f.Out, fds[1], f)
	if err != nil {
		return err
	}

	var st storedefs.Store
	if f.Load != "" || f.Save != "" {
		dbStore, err := stash.Open(f.DB)
		if err != nil {
			return err
		}
		defer dbStore.Close()
		st = dbStore
	}

	var rows []value.Value
	var inputs []input
	if f.Load != "" {
		v, err := st.Value(f.Load)
		if errors.Is(err, storedefs.ErrNoValue) {
			return fmt.Errorf("no value named %q in the stash", f.Load)
		} else if err != nil {
			return err
		}
		rows = appendRows(rows, v)
	} else {
		inputs, err = readInputs(fds[0], args)
		if err != nil {
			return err
		}
		for _, in := range inputs {
			rows, err = decodeRows(rows, in, newDecoder)
			if err != nil {
				return err
			}
		}
	}
	logger.Debugf("read %d rows", len(rows))

	if f.Save != "" {
		err := st.SetValue(f.Save, value.Table(rows).IntoUntaggedValue())
		if err != nil {
			return fmt.Errorf("save %s: %w", f.Save, err)
		}
	}

	if err := writeRows(rows); err != nil {
		return err
	}
	reportErrors(fds[2], rows, inputs)
	return nil
}

func decoderFor(format string) (func(io.Reader) *value.Decoder, error) {
	switch format {
	case "json":
		return value.NewJSONDecoder, nil
	case "yaml":
		return value.NewYAMLDecoder, nil
	}
	return nil, prog.BadUsage(fmt.Sprintf("unknown input format %q", format))
}

func writerFor(format string, out *os.File, f *prog.Flags) (func([]value.Value) error, error) {
	switch format {
	case "table":
		opts := table.Options{Width: f.Width, Color: color(f.Color, out)}
		if opts.Width == 0 {
			opts.Width = sys.TermWidth(out)
		}
		return func(rows []value.Value) error { return table.Render(out, rows, opts) }, nil
	case "json":
		return encodeWith(value.NewJSONEncoder(out)), nil
	case "yaml":
		return encodeWith(value.NewYAMLEncoder(out)), nil
	}
	return nil, prog.BadUsage(fmt.Sprintf("unknown output format %q", format))
}

func color(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return sys.IsATTY(out.Fd())
}

func encodeWith(enc *value.Encoder) func([]value.Value) error {
	return func(rows []value.Value) error {
		for _, row := range rows {
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
		return enc.Close()
	}
}

func readInputs(stdin *os.File, args []string) ([]input, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read standard input: %w", err)
		}
		return []input{{"", data}}, nil
	}
	inputs := make([]input, len(args))
	for i, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		inputs[i] = input{name, data}
	}
	return inputs, nil
}

// decodeRows decodes the values of an input and appends them as rows. Values
// read from a file without an anchor are anchored to the file.
func decodeRows(rows []value.Value, in input, newDecoder func(io.Reader) *value.Decoder) ([]value.Value, error) {
	dec := newDecoder(bytes.NewReader(in.data))
	for {
		v, err := dec.Decode()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			if in.name != "" {
				return nil, fmt.Errorf("%s: %w", in.name, err)
			}
			return nil, err
		}
		if in.name != "" && v.Anchor() == nil {
			v.Tag = v.Tag.WithAnchor(diag.FileAnchor(in.name))
		}
		rows = appendRows(rows, v)
	}
}

// appendRows appends the elements of a table, or any other value as a single
// row.
func appendRows(rows []value.Value, v value.Value) []value.Value {
	if elems, ok := v.Table(); ok {
		return append(rows, elems...)
	}
	return append(rows, v)
}

// reportErrors shows the error rows on w, with an excerpt of their source
// when it is known.
func reportErrors(w io.Writer, rows []value.Value, inputs []input) {
	for _, row := range rows {
		e, ok := row.ShellError()
		if !ok || e == nil {
			continue
		}
		diag.ShowError(w, withSource(e, row.Anchor(), inputs))
	}
}

func withSource(e *shellerr.ShellError, anchor *diag.AnchorLocation, inputs []input) error {
	if anchor == nil {
		return e
	}
	switch anchor.Kind {
	case diag.AnchorSource:
		return shellerr.InSource(e, "[source]", anchor.Location)
	case diag.AnchorFile:
		for _, in := range inputs {
			if in.name == anchor.Location {
				return shellerr.InSource(e, in.name, string(in.data))
			}
		}
	}
	return e
}
