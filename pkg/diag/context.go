// Package diag contains the provenance types attached to values, together
// with utilities for showing the part of a source that a span refers to.
package diag

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Context is a span of text in a named source. It is used to show errors that
// can be associated with a part of the source.
type Context struct {
	Name   string
	Source string
	Span
}

// NewContext creates a new Context.
func NewContext(name, source string, s Span) *Context {
	return &Context{name, source, s}
}

// Markers around each line of the highlighted text, and the text shown in
// place of an empty span.
var (
	highlightStart = "\033[1;4m"
	highlightEnd   = "\033[m"
	emptyMarker    = "^"
)

// excerpt is the part of the source shown for a span: the highlighted text
// together with the rest of the lines it starts and ends on.
type excerpt struct {
	before, text, after string
	// 1-based line numbers of the first and last line of text.
	first, last int
}

func (c *Context) excerpt() excerpt {
	prefix := c.Source[:c.Start]
	text := c.Source[c.Start:c.End]
	var after string
	if strings.HasSuffix(text, "\n") {
		text = text[:len(text)-1]
	} else {
		after = c.Source[c.End:]
		if i := strings.IndexByte(after, '\n'); i >= 0 {
			after = after[:i]
		}
	}
	first := strings.Count(prefix, "\n") + 1
	return excerpt{
		before: prefix[strings.LastIndexByte(prefix, '\n')+1:],
		text:   text,
		after:  after,
		first:  first,
		last:   first + strings.Count(text, "\n"),
	}
}

func (e excerpt) position() string {
	if e.first == e.last {
		return fmt.Sprintf("line %d:", e.first)
	}
	return fmt.Sprintf("line %d-%d:", e.first, e.last)
}

// render writes the excerpt, starting every line but the first with indent.
func (e excerpt) render(indent string) string {
	var sb strings.Builder
	sb.WriteString(e.before)
	text := e.text
	if text == "" {
		text = emptyMarker
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteString("\n" + indent)
		}
		sb.WriteString(highlightStart + line + highlightEnd)
	}
	sb.WriteString(e.after)
	return sb.String()
}

// Show shows the Context, with the position on the first line and the source
// excerpt on the following lines.
func (c *Context) Show(indent string) string {
	if msg, ok := c.badPosition(); ok {
		return msg
	}
	e := c.excerpt()
	return c.Name + ", " + e.position() + "\n" + indent + e.render(indent)
}

// ShowCompact is like Show, but puts the position and the source excerpt on
// the same line. Continuation lines are aligned with the start of the
// excerpt.
func (c *Context) ShowCompact(indent string) string {
	if msg, ok := c.badPosition(); ok {
		return msg
	}
	e := c.excerpt()
	desc := c.Name + ", " + e.position() + " "
	return desc + e.render(indent+strings.Repeat(" ", runewidth.StringWidth(desc)))
}

func (c *Context) badPosition() (string, bool) {
	switch {
	case c.Span.IsUnknown() && c.Source != "":
		return c.Name + ", unknown position", true
	case c.Start < 0 || c.End > len(c.Source) || c.Start > c.End:
		return fmt.Sprintf("%s, invalid position %d-%d", c.Name, c.Start, c.End), true
	}
	return "", false
}
