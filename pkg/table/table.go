// Package table renders a sequence of values as a text table.
//
// The columns are the merged descriptors of the rows. A row that is not a
// record is shown in the placeholder column value.ValueColumn.
package table

import (
	"fmt"
	"io"
	"strings"

	pretty "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"github.com/myty/nushell/pkg/primitive"
	"github.com/myty/nushell/pkg/value"
)

const (
	columnSep = " │ "
	ruleSep   = "─┼─"
	rule      = "─"
	ellipsis  = "…"
)

// Widths are measured without East Asian ambiguous-width rules, so that the
// layout does not depend on the locale.
var cond = newCondition()

func newCondition() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}

// style draws columns separated by vertical bars and a rule under the header,
// with no outer border and no padding.
var style = func() pretty.Style {
	s := pretty.StyleLight
	s.Name = "nuvalue"
	s.Box.MiddleVertical = columnSep
	s.Box.MiddleSeparator = ruleSep
	s.Box.MiddleHorizontal = rule
	s.Box.PaddingLeft = ""
	s.Box.PaddingRight = ""
	s.Options = pretty.Options{
		DrawBorder:      false,
		SeparateColumns: true,
		SeparateHeader:  true,
	}
	s.Format.Header = text.FormatDefault
	s.Color = pretty.ColorOptions{}
	return s
}()

// Options controls rendering.
type Options struct {
	// Maximum width of a line; 0 means unlimited.
	Width int
	// Whether to bold the header with ANSI escape sequences.
	Color bool
}

// Render writes the rows to w as a table. Nothing is written when there are no
// rows.
func Render(w io.Writer, rows []value.Value, opts Options) error {
	if len(rows) == 0 {
		return nil
	}
	columns := value.MergeDescriptors(rows)
	cells := make([]pretty.Row, len(rows))
	widths := make([]int, len(columns))
	for j, col := range columns {
		widths[j] = cond.StringWidth(col)
	}
	for i, row := range rows {
		cells[i] = make(pretty.Row, len(columns))
		for j, col := range columns {
			cell := Cell(row, col)
			cells[i][j] = cell
			if cw := cond.StringWidth(cell); cw > widths[j] {
				widths[j] = cw
			}
		}
	}

	tw := pretty.NewWriter()
	s := style
	if opts.Color {
		s.Color.Header = text.Colors{text.Bold}
	}
	tw.SetStyle(s)
	header := make(pretty.Row, len(columns))
	for j, col := range columns {
		header[j] = col
	}
	tw.AppendHeader(header)
	tw.AppendRows(cells)
	if opts.Width > 0 {
		natural := append([]int(nil), widths...)
		shrink(widths, opts.Width-cond.StringWidth(columnSep)*(len(columns)-1))
		var configs []pretty.ColumnConfig
		for j, cw := range widths {
			if cw < natural[j] {
				configs = append(configs, pretty.ColumnConfig{
					Number: j + 1, WidthMax: cw, WidthMaxEnforcer: truncate})
			}
		}
		tw.SetColumnConfigs(configs)
	}

	var sb strings.Builder
	for _, line := range strings.Split(tw.Render(), "\n") {
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func truncate(s string, width int) string { return cond.Truncate(s, width, ellipsis) }

// shrink narrows the widest columns, one cell at a time, until the widths add
// up to at most budget. No column is narrowed below 1.
func shrink(widths []int, budget int) {
	total := 0
	for _, w := range widths {
		total += w
	}
	for total > budget {
		widest := 0
		for j, w := range widths {
			if w > widths[widest] {
				widest = j
			}
		}
		if widths[widest] <= 1 {
			return
		}
		widths[widest]--
		total--
	}
}

// Cell returns the text of the cell of row in column col.
func Cell(row value.Value, col string) string {
	if d, ok := row.Row(); ok && d.Len() > 0 {
		if v, ok := d.Get(col); ok {
			return Summary(v.UntaggedValue)
		}
		return ""
	}
	if col == value.ValueColumn {
		return Summary(row.UntaggedValue)
	}
	return ""
}

// Summary returns the one-line text shown for v in a cell.
func Summary(v value.UntaggedValue) string {
	switch v.Kind() {
	case value.KindRow:
		return "[" + strings.Join(append([]string{"row"}, v.DataDescriptors()...), " ") + "]"
	case value.KindTable:
		elems, _ := v.Table()
		return fmt.Sprintf("[table %d rows]", len(elems))
	case value.KindError:
		if e := v.ExpectError(); e != nil {
			return "[error: " + oneLine(e.Error()) + "]"
		}
		return "[error]"
	case value.KindBlock:
		return "[block]"
	}
	p, _ := v.Primitive()
	return oneLine(primitive.Format(p))
}

func oneLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\t", " ").Replace(s)
}
