package diag

import (
	"strings"

	"github.com/myty/nushell/pkg/hash"
)

// AnchorKind identifies what an AnchorLocation points to.
type AnchorKind string

// Possible AnchorKind values.
const (
	AnchorURL    AnchorKind = "url"
	AnchorFile   AnchorKind = "file"
	AnchorSource AnchorKind = "source"
)

// AnchorLocation identifies the source a value originated from. For URL and
// file anchors Location is the URL or the path; for source anchors it is the
// source text itself.
type AnchorLocation struct {
	Kind     AnchorKind `json:"kind" yaml:"kind"`
	Location string     `json:"location" yaml:"location"`
}

// URLAnchor returns an anchor pointing to a URL.
func URLAnchor(url string) *AnchorLocation {
	return &AnchorLocation{AnchorURL, url}
}

// FileAnchor returns an anchor pointing to a file.
func FileAnchor(path string) *AnchorLocation {
	return &AnchorLocation{AnchorFile, path}
}

// SourceAnchor returns an anchor holding the source text.
func SourceAnchor(text string) *AnchorLocation {
	return &AnchorLocation{AnchorSource, text}
}

// Name returns the URL or path of the anchor. Source anchors have no name.
func (a *AnchorLocation) Name() (string, bool) {
	if a == nil || a.Kind == AnchorSource {
		return "", false
	}
	return a.Location, true
}

// Tag is the provenance attached to every value: the span it covers and,
// optionally, the source it came from.
type Tag struct {
	Anchor *AnchorLocation `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Span   Span            `json:"span" yaml:"span"`
}

// Tagger is implemented by types that can be converted into a Tag.
type Tagger interface {
	Tag() Tag
}

// UnknownTag returns the sentinel tag for values with no known provenance.
func UnknownTag() Tag { return Tag{} }

// Tag returns the receiver, so that a Tag is also a Tagger.
func (t Tag) Tag() Tag { return t }

// IsUnknown reports whether t is the unknown tag.
func (t Tag) IsUnknown() bool { return t.Anchor == nil && t.Span.IsUnknown() }

// AnchorName returns the name of the anchor, if there is one.
func (t Tag) AnchorName() (string, bool) { return t.Anchor.Name() }

// WithSpan returns a copy of t with the span replaced.
func (t Tag) WithSpan(s Span) Tag {
	t.Span = s
	return t
}

// WithAnchor returns a copy of t with the anchor replaced.
func (t Tag) WithAnchor(a *AnchorLocation) Tag {
	t.Anchor = a
	return t
}

// Equal reports whether two tags have the same span and equivalent anchors.
func (t Tag) Equal(other Tag) bool { return t.Compare(other) == 0 }

// Compare orders tags by span, then by anchor. An absent anchor sorts before
// any present one.
func (t Tag) Compare(other Tag) int {
	if c := t.Span.Compare(other.Span); c != 0 {
		return c
	}
	switch a, b := t.Anchor, other.Anchor; {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		if c := strings.Compare(string(a.Kind), string(b.Kind)); c != 0 {
			return c
		}
		return strings.Compare(a.Location, b.Location)
	}
}

func (t Tag) Hash() uint32 {
	h := t.Span.Hash()
	if t.Anchor != nil {
		h = hash.DJB(h, hash.String(string(t.Anchor.Kind)), hash.String(t.Anchor.Location))
	}
	return h
}
