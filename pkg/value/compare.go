package value

import (
	"strings"

	"github.com/myty/nushell/pkg/hash"
	"github.com/myty/nushell/pkg/primitive"
	"github.com/myty/nushell/pkg/shellerr"
)

// Values can be compared in two modes.
//
// Cmp, Equal and Hash take provenance into account: two values are equal only
// if their payloads are equal and their tags, and the tags of every nested
// value, are equal too. This is the mode used by the Equal methods, and hence
// by go-cmp.
//
// CmpContent, EqualContent and HashContent ignore tags at every depth, as well
// as the spans embedded in column paths, ranges and blocks. Use them to group
// or deduplicate values by what they hold.
//
// In both modes values of different kinds are ordered primitive < row < table
// < error < block. Rows compare their keys, then their values; tables compare
// their elements, then their lengths.

// Cmp compares two values, taking provenance into account.
func Cmp(a, b Value) int { return compareValue(a, b, true) }

// CmpContent compares two values, ignoring provenance.
func CmpContent(a, b Value) int { return compareValue(a, b, false) }

// Equal reports whether Cmp(a, b) == 0.
func Equal(a, b Value) bool { return Cmp(a, b) == 0 }

// EqualContent reports whether CmpContent(a, b) == 0.
func EqualContent(a, b Value) bool { return CmpContent(a, b) == 0 }

// Hash returns a hash consistent with Equal.
func Hash(v Value) uint32 { return hashValue(v, true) }

// HashContent returns a hash consistent with EqualContent.
func HashContent(v Value) uint32 { return hashValue(v, false) }

// Equal reports whether v and other are equal, including provenance.
func (v Value) Equal(other Value) bool { return Equal(v, other) }

// Equal reports whether v and other are equal. The tags of nested values are
// compared.
func (v UntaggedValue) Equal(other UntaggedValue) bool {
	return compareUntagged(v, other, true) == 0
}

// EqualContent reports whether v and other hold the same content, ignoring
// the tags of nested values.
func (v UntaggedValue) EqualContent(other UntaggedValue) bool {
	return compareUntagged(v, other, false) == 0
}

func compareValue(a, b Value, tags bool) int {
	if c := compareUntagged(a.UntaggedValue, b.UntaggedValue, tags); c != 0 || !tags {
		return c
	}
	return a.Tag.Compare(b.Tag)
}

func compareUntagged(a, b UntaggedValue, tags bool) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindPrimitive:
		if tags {
			return primitive.Cmp(a.prim, b.prim)
		}
		return primitive.CmpContent(a.prim, b.prim)
	case KindRow:
		return compareDict(a.row, b.row, tags)
	case KindTable:
		return compareValues(a.table, b.table, tags)
	case KindError:
		return shellerr.Compare(a.err, b.err)
	case KindBlock:
		return compareEvaluate(a.block, b.block, tags)
	}
	return 0
}

func compareDict(a, b *Dictionary, tags bool) int {
	ak, bk := a.Keys(), b.Keys()
	for i := 0; i < len(ak) && i < len(bk); i++ {
		if c := strings.Compare(ak[i], bk[i]); c != 0 {
			return c
		}
	}
	if c := compareLen(len(ak), len(bk)); c != 0 {
		return c
	}
	for _, k := range ak {
		av, _ := a.Get(k)
		bv, _ := b.Get(k)
		if c := compareValue(av, bv, tags); c != 0 {
			return c
		}
	}
	return 0
}

func compareValues(a, b []Value, tags bool) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareValue(a[i], b[i], tags); c != 0 {
			return c
		}
	}
	return compareLen(len(a), len(b))
}

func compareLen(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func hashValue(v Value, tags bool) uint32 {
	h := hashUntagged(v.UntaggedValue, tags)
	if tags {
		h = hash.DJBCombine(h, v.Tag.Hash())
	}
	return h
}

func hashUntagged(v UntaggedValue, tags bool) uint32 {
	h := hash.DJBCombine(hash.DJBInit, uint32(v.kind))
	switch v.kind {
	case KindPrimitive:
		if tags {
			return hash.DJBCombine(h, primitive.Hash(v.prim))
		}
		return hash.DJBCombine(h, primitive.HashContent(v.prim))
	case KindRow:
		v.row.Iterate(func(k string, elem Value) bool {
			h = hash.DJBCombine(h, hash.String(k))
			h = hash.DJBCombine(h, hashValue(elem, tags))
			return true
		})
	case KindTable:
		for _, elem := range v.table {
			h = hash.DJBCombine(h, hashValue(elem, tags))
		}
	case KindError:
		h = hash.DJBCombine(h, v.err.Hash())
	case KindBlock:
		h = hash.DJBCombine(h, hashEvaluate(v.block, tags))
	}
	return h
}
