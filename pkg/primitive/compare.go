package primitive

import (
	"bytes"
	"strings"

	"github.com/myty/nushell/pkg/hash"
)

// Cmp compares two primitives and returns -1, 0 or 1. Primitives of different
// kinds are ordered by kind; primitives of the same kind are ordered
// naturally. Spans embedded in ranges and column paths take part in the
// comparison.
//
// Cmp defines a total order: Cmp(a, b) == 0 iff Equal(a, b).
func Cmp(a, b Primitive) int { return compare(a, b, true) }

// CmpContent is like Cmp, but ignores the spans embedded in ranges and column
// paths.
func CmpContent(a, b Primitive) int { return compare(a, b, false) }

// Equal reports whether two primitives are equal under Cmp.
func Equal(a, b Primitive) bool { return Cmp(a, b) == 0 }

// EqualContent reports whether two primitives are equal under CmpContent.
func EqualContent(a, b Primitive) bool { return CmpContent(a, b) == 0 }

func compare(a, b Primitive, spans bool) int {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return compareOrdered(ka, kb)
	}
	switch a := a.(type) {
	case Int:
		return a.Value().Cmp(b.(Int).Value())
	case Decimal:
		return a.Cmp(b.(Decimal).Decimal)
	case Bytes:
		return compareOrdered(a, b.(Bytes))
	case String:
		return strings.Compare(string(a), string(b.(String)))
	case Line:
		return strings.Compare(string(a), string(b.(Line)))
	case *ColumnPath:
		return compareColumnPath(a, b.(*ColumnPath), spans)
	case Boolean:
		return compareOrdered(boolRank(bool(a)), boolRank(bool(b.(Boolean))))
	case Date:
		return a.Time.Compare(b.(Date).Time)
	case Duration:
		return compareOrdered(a, b.(Duration))
	case *Range:
		return compareRange(a, b.(*Range), spans)
	case Path:
		return strings.Compare(string(a), string(b.(Path)))
	case Binary:
		return bytes.Compare(a, b.(Binary))
	}
	// Nothing, or a nil Primitive.
	return 0
}

func compareOrdered[T interface{ ~uint8 | ~uint64 | ~int }](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareColumnPath(a, b *ColumnPath, spans bool) int {
	for i := 0; i < len(a.Members) && i < len(b.Members); i++ {
		if c := compareMember(a.Members[i], b.Members[i], spans); c != 0 {
			return c
		}
	}
	return compareOrdered(len(a.Members), len(b.Members))
}

func compareMember(a, b PathMember, spans bool) int {
	if a.Kind != b.Kind {
		if a.Kind == MemberString {
			return -1
		}
		return 1
	}
	var c int
	if a.Kind == MemberInt {
		c = a.index().Cmp(b.index())
	} else {
		c = strings.Compare(a.Name, b.Name)
	}
	if c == 0 && spans {
		c = a.Span.Compare(b.Span)
	}
	return c
}

func compareRange(a, b *Range, spans bool) int {
	if c := compareBound(a.From, b.From, spans); c != 0 {
		return c
	}
	return compareBound(a.To, b.To, spans)
}

func compareBound(a, b RangeBound, spans bool) int {
	if c := compare(a.Value.Item, b.Value.Item, spans); c != 0 {
		return c
	}
	if spans {
		if c := a.Value.Span.Compare(b.Value.Span); c != 0 {
			return c
		}
	}
	return compareOrdered(a.Inclusion.rank(), b.Inclusion.rank())
}

// Hash returns a hash of p consistent with Equal.
func Hash(p Primitive) uint32 { return hashPrimitive(p, true) }

// HashContent returns a hash of p consistent with EqualContent.
func HashContent(p Primitive) uint32 { return hashPrimitive(p, false) }

func hashPrimitive(p Primitive, spans bool) uint32 {
	h := hash.DJBCombine(hash.DJBInit, uint32(KindOf(p)))
	switch p := p.(type) {
	case Int:
		return hash.DJBCombine(h, hash.BigInt(p.Value()))
	case Decimal:
		// String drops trailing zeros, so decimals that compare equal hash the
		// same.
		return hash.DJBCombine(h, hash.String(p.String()))
	case Bytes:
		return hash.DJBCombine(h, hash.UInt64(uint64(p)))
	case String:
		return hash.DJBCombine(h, hash.String(string(p)))
	case Line:
		return hash.DJBCombine(h, hash.String(string(p)))
	case *ColumnPath:
		for _, m := range p.Members {
			h = hash.DJBCombine(h, hash.String(string(m.Kind)))
			if m.Kind == MemberInt {
				h = hash.DJBCombine(h, hash.BigInt(m.index()))
			} else {
				h = hash.DJBCombine(h, hash.String(m.Name))
			}
			if spans {
				h = hash.DJBCombine(h, m.Span.Hash())
			}
		}
		return h
	case Boolean:
		return hash.DJBCombine(h, hash.Bool(bool(p)))
	case Date:
		return hash.DJBCombine(h, hash.Int64(p.UnixNano()))
	case Duration:
		return hash.DJBCombine(h, hash.UInt64(uint64(p)))
	case *Range:
		for _, b := range [...]RangeBound{p.From, p.To} {
			h = hash.DJBCombine(h, hashPrimitive(b.Value.Item, spans))
			if spans {
				h = hash.DJBCombine(h, b.Value.Span.Hash())
			}
			h = hash.DJBCombine(h, uint32(b.Inclusion.rank()))
		}
		return h
	case Path:
		return hash.DJBCombine(h, hash.String(string(p)))
	case Binary:
		return hash.DJBCombine(h, hash.Bytes(p))
	}
	return h
}
