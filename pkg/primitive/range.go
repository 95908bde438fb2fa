package primitive

import "github.com/myty/nushell/pkg/diag"

// RangeInclusion tells whether the endpoint of a range is part of it.
type RangeInclusion string

// Possible RangeInclusion values, in comparison order.
const (
	Inclusive RangeInclusion = "inclusive"
	Exclusive RangeInclusion = "exclusive"
)

func (r RangeInclusion) rank() int {
	if r == Exclusive {
		return 1
	}
	return 0
}

// RangeBound is one endpoint of a Range.
type RangeBound struct {
	Value     diag.Spanned[Primitive]
	Inclusion RangeInclusion
}

// InclusiveBound returns an endpoint that is part of the range.
func InclusiveBound(p Primitive, s diag.Span) RangeBound {
	return RangeBound{diag.SpannedOf(p, s), Inclusive}
}

// ExclusiveBound returns an endpoint that is not part of the range.
func ExclusiveBound(p Primitive, s diag.Span) RangeBound {
	return RangeBound{diag.SpannedOf(p, s), Exclusive}
}

// Range is a pair of bounded endpoints.
type Range struct {
	From RangeBound
	To   RangeBound
}

// NewRange returns a Range between the two bounds.
func NewRange(from, to RangeBound) *Range {
	return &Range{from, to}
}

func (r *Range) Equal(other *Range) bool { return Equal(r, other) }

// Clone returns a deep copy of r.
func (r *Range) Clone() *Range {
	c := *r
	c.From.Value.Item = Clone(r.From.Value.Item)
	c.To.Value.Item = Clone(r.To.Value.Item)
	return &c
}
