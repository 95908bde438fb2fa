package diag

import "github.com/myty/nushell/pkg/hash"

// Span represents the byte range [Start, End) of a value within its source.
//
// The zero Span is the unknown span, used for values that were synthesized
// without a traceable location.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// NewSpan returns a Span covering [start, end).
func NewSpan(start, end int) Span {
	return Span{start, end}
}

// UnknownSpan returns the span used when no location is known.
func UnknownSpan() Span { return Span{} }

// PointSpan returns a zero-width Span at the given point.
func PointSpan(p int) Span { return Span{p, p} }

// IsUnknown reports whether s is the unknown span.
func (s Span) IsUnknown() bool { return s == Span{} }

// Len returns the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Until returns a Span from the start of s to the end of other.
func (s Span) Until(other Span) Span {
	return Span{s.Start, other.End}
}

// Slice returns the part of src covered by s. It returns an empty string if s
// does not fit in src.
func (s Span) Slice(src string) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}
	return src[s.Start:s.End]
}

// Tag returns a Tag with the span and no anchor.
func (s Span) Tag() Tag { return Tag{Span: s} }

// Compare orders spans by start, then end.
func (s Span) Compare(other Span) int {
	switch {
	case s.Start < other.Start:
		return -1
	case s.Start > other.Start:
		return 1
	case s.End < other.End:
		return -1
	case s.End > other.End:
		return 1
	}
	return 0
}

func (s Span) Hash() uint32 {
	return hash.DJB(hash.Int64(int64(s.Start)), hash.Int64(int64(s.End)))
}

// Spanned pairs an item with the span it came from.
type Spanned[T any] struct {
	Item T    `json:"item" yaml:"item"`
	Span Span `json:"span" yaml:"span"`
}

// SpannedOf returns item spanned at s.
func SpannedOf[T any](item T, s Span) Spanned[T] {
	return Spanned[T]{item, s}
}
