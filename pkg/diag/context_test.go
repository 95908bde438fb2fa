package diag

import (
	"strings"
	"testing"
)

func TestContext_Show(t *testing.T) {
	useMarkers(t, "[", "]")
	tests := []struct {
		name    string
		ctx     *Context
		indent  string
		show    string
		compact string
	}{
		{
			name:    "span within one line",
			ctx:     contextAround("in.json", `{"age": "thirty"}`, `"thirty"`),
			indent:  "  ",
			show:    "in.json, line 1:\n  {\"age\": [\"thirty\"]}",
			compact: "in.json, line 1: {\"age\": [\"thirty\"]}",
		},
		{
			name:   "span on a later line",
			ctx:    contextAround("in.json", "{\n  \"size\": -1\n}", "-1"),
			indent: "  ",
			show:   "in.json, line 2:\n    \"size\": [-1]",
		},
		{
			name:   "span across lines",
			ctx:    contextAround("in.yaml", "name: a\ntags: [x,\n  y]\n", "[x,\n  y]"),
			indent: "> ",
			show:   "in.yaml, line 2-3:\n> tags: [[x,]\n> [  y]]",
			compact: lines(
				"in.yaml, line 2-3: tags: [[x,]",
				">                    [  y]]"),
		},
		{
			name:    "trailing newline is not highlighted",
			ctx:     NewContext("src", "a\nb\n", Span{2, 4}),
			show:    "src, line 2:\n[b]",
			compact: "src, line 2: [b]",
		},
		{
			name:    "empty span",
			ctx:     NewContext("src", "ab", PointSpan(1)),
			show:    "src, line 1:\na[^]b",
			compact: "src, line 1: a[^]b",
		},
		{
			name:    "wide characters in the name",
			ctx:     NewContext("表", "x\ny", Span{0, 3}),
			compact: "表, line 1-2: [x]\n              [y]",
		},
		{
			name:    "unknown span",
			ctx:     NewContext("src", "x", UnknownSpan()),
			show:    "src, unknown position",
			compact: "src, unknown position",
		},
		{
			name:    "reversed span",
			ctx:     NewContext("src", "abc", Span{2, 1}),
			show:    "src, invalid position 2-1",
			compact: "src, invalid position 2-1",
		},
		{
			name:    "span past the end",
			ctx:     NewContext("src", "abc", Span{1, 7}),
			show:    "src, invalid position 1-7",
			compact: "src, invalid position 1-7",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.show != "" {
				if got := test.ctx.Show(test.indent); got != test.show {
					t.Errorf("Show(%q) -> %q, want %q", test.indent, got, test.show)
				}
			}
			if test.compact != "" {
				if got := test.ctx.ShowCompact(test.indent); got != test.compact {
					t.Errorf("ShowCompact(%q) -> %q, want %q", test.indent, got, test.compact)
				}
			}
		})
	}
}

func useMarkers(t *testing.T, start, end string) {
	saved := [2]string{highlightStart, highlightEnd}
	highlightStart, highlightEnd = start, end
	t.Cleanup(func() { highlightStart, highlightEnd = saved[0], saved[1] })
}

// contextAround returns a Context spanning the first occurrence of part in
// src.
func contextAround(name, src, part string) *Context {
	i := strings.Index(src, part)
	return NewContext(name, src, Span{i, i + len(part)})
}

func lines(ls ...string) string { return strings.Join(ls, "\n") }
