package primitive

import (
	"testing"

	"github.com/myty/nushell/pkg/diag"
	"github.com/shopspring/decimal"
)

func TestCmp_KindsAreOrderedByDeclaration(t *testing.T) {
	for i, a := range samples {
		for j, b := range samples {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := Cmp(a, b); got != want {
				t.Errorf("Cmp(%v, %v) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestCmp_SameKind(t *testing.T) {
	tests := []struct {
		a, b Primitive
		want int
	}{
		{NewInt(1), NewInt(2), -1},
		{NewInt(-3), NewInt(-3), 0},
		{Decimal{decimal.RequireFromString("1.50")}, Decimal{decimal.RequireFromString("1.5")}, 0},
		{Decimal{decimal.RequireFromString("2")}, Decimal{decimal.RequireFromString("1.5")}, 1},
		{Bytes(1), Bytes(2), -1},
		{String("a"), String("b"), -1},
		{Line("b"), Line("a"), 1},
		{Boolean(false), Boolean(true), -1},
		{Duration(5), Duration(5), 0},
		{Path("/a"), Path("/b"), -1},
		{Binary{1}, Binary{1, 0}, -1},
		{Nothing{}, nil, 0},
		{NewColumnPath(StringMember("a", span0)), NewColumnPath(IntMember(0, span0)), -1},
		{NewColumnPath(StringMember("a", span0)), NewColumnPath(StringMember("a", span0), StringMember("b", span0)), -1},
		{
			NewRange(InclusiveBound(NewInt(1), span0), InclusiveBound(NewInt(5), span0)),
			NewRange(InclusiveBound(NewInt(1), span0), ExclusiveBound(NewInt(5), span0)),
			-1,
		},
	}
	for _, test := range tests {
		if got := Cmp(test.a, test.b); got != test.want {
			t.Errorf("Cmp(%v, %v) = %d, want %d", test.a, test.b, got, test.want)
		}
		if got := Cmp(test.b, test.a); got != -test.want {
			t.Errorf("Cmp(%v, %v) = %d, want %d", test.b, test.a, got, -test.want)
		}
	}
}

func TestCmpContent_IgnoresEmbeddedSpans(t *testing.T) {
	a := NewColumnPath(StringMember("name", diag.NewSpan(0, 4)))
	b := NewColumnPath(StringMember("name", diag.NewSpan(10, 14)))
	if Equal(a, b) {
		t.Errorf("Equal ignores member spans")
	}
	if !EqualContent(a, b) {
		t.Errorf("EqualContent compares member spans")
	}
	if HashContent(a) != HashContent(b) {
		t.Errorf("HashContent differs for content-equal paths")
	}

	r1 := NewRange(InclusiveBound(NewInt(1), diag.NewSpan(0, 1)), InclusiveBound(NewInt(2), diag.NewSpan(3, 4)))
	r2 := NewRange(InclusiveBound(NewInt(1), span0), InclusiveBound(NewInt(2), span0))
	if Equal(r1, r2) || !EqualContent(r1, r2) {
		t.Errorf("range bound spans are not handled by the content comparison")
	}
}

func TestHash_ConsistentWithEqual(t *testing.T) {
	pairs := [][2]Primitive{
		{Decimal{decimal.RequireFromString("1.50")}, Decimal{decimal.RequireFromString("1.5")}},
		{NewInt(99), NewInt(99)},
		{Binary(nil), Binary{}},
		{Clone(path), path},
		{Clone(rng), rng},
		{date, NewDate(date.Time)},
	}
	for _, pair := range pairs {
		if !Equal(pair[0], pair[1]) {
			t.Errorf("Equal(%v, %v) = false", pair[0], pair[1])
		}
		if Hash(pair[0]) != Hash(pair[1]) {
			t.Errorf("Hash(%v) != Hash(%v)", pair[0], pair[1])
		}
	}
	if Hash(String("a")) == Hash(Line("a")) {
		t.Errorf("kind is not part of the hash")
	}
}
