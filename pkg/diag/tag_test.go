package diag

import (
	"testing"

	"github.com/myty/nushell/pkg/tt"
)

func TestAnchorName(t *testing.T) {
	name := func(a *AnchorLocation) (string, bool) { return Tag{Anchor: a}.AnchorName() }
	tt.Test(t, tt.Fn(name).Named("AnchorName"),
		Args(nil).Rets("", false),
		Args(URLAnchor("https://example.com/a.json")).Rets("https://example.com/a.json", true),
		Args(FileAnchor("/tmp/a.json")).Rets("/tmp/a.json", true),
		Args(SourceAnchor("ls | get name")).Rets("", false),
	)
}

func TestTag_Conversions(t *testing.T) {
	span := NewSpan(3, 8)
	var tagger Tagger = span
	if got := tagger.Tag(); got != (Tag{Span: span}) {
		t.Errorf("Span.Tag() = %v", got)
	}
	tag := Tag{Span: span}.WithAnchor(FileAnchor("x"))
	if tag.Tag().Anchor == nil {
		t.Errorf("Tag.Tag() dropped the anchor")
	}
	if got := tag.WithSpan(NewSpan(0, 1)).Span; got != NewSpan(0, 1) {
		t.Errorf("WithSpan() span = %v", got)
	}
	if !UnknownTag().IsUnknown() || tag.IsUnknown() {
		t.Errorf("IsUnknown() misreported")
	}
}

func TestTag_CompareAndHash(t *testing.T) {
	a := Tag{Span: NewSpan(1, 2)}
	b := a.WithAnchor(FileAnchor("/a"))
	c := a.WithAnchor(FileAnchor("/b"))
	d := a.WithAnchor(FileAnchor("/a"))

	tt.Test(t, tt.Fn(Tag.Compare).Named("Compare"),
		Args(a, a).Rets(0),
		Args(a, b).Rets(-1),
		Args(b, a).Rets(1),
		Args(b, c).Rets(-1),
		Args(b, d).Rets(0),
		Args(Tag{Span: NewSpan(0, 5)}, b).Rets(-1),
	)
	if !b.Equal(d) {
		t.Errorf("tags with equal anchors in distinct pointers are unequal")
	}
	if b.Hash() != d.Hash() {
		t.Errorf("equal tags have different hashes")
	}
}
