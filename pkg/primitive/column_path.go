package primitive

import (
	"math/big"
	"strings"

	"github.com/myty/nushell/pkg/diag"
)

// MemberKind tells whether a PathMember names a column or indexes a row.
type MemberKind string

// Possible MemberKind values, in comparison order.
const (
	MemberString MemberKind = "string"
	MemberInt    MemberKind = "int"
)

// PathMember is one step of a ColumnPath.
type PathMember struct {
	Kind  MemberKind
	Name  string   // for MemberString
	Index *big.Int // for MemberInt
	Span  diag.Span
}

// StringMember returns a member that selects a column by name.
func StringMember(name string, s diag.Span) PathMember {
	return PathMember{Kind: MemberString, Name: name, Span: s}
}

// IntMember returns a member that selects a row by index.
func IntMember(i int64, s diag.Span) PathMember {
	return PathMember{Kind: MemberInt, Index: big.NewInt(i), Span: s}
}

func (m PathMember) index() *big.Int {
	if m.Index == nil {
		return new(big.Int)
	}
	return m.Index
}

// String returns the column name or the index.
func (m PathMember) String() string {
	if m.Kind == MemberInt {
		return m.index().String()
	}
	return m.Name
}

func (m PathMember) Equal(other PathMember) bool { return compareMember(m, other, true) == 0 }

// ColumnPath is a sequence of members that navigates into nested rows and
// tables, like a.b.0.
type ColumnPath struct {
	Members []PathMember
}

// NewColumnPath returns a ColumnPath made of the given members.
func NewColumnPath(members ...PathMember) *ColumnPath {
	return &ColumnPath{members}
}

// String joins the members with ".".
func (c *ColumnPath) String() string {
	parts := make([]string, len(c.Members))
	for i, m := range c.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, ".")
}

func (c *ColumnPath) Equal(other *ColumnPath) bool { return Equal(c, other) }

// Clone returns a deep copy of c.
func (c *ColumnPath) Clone() *ColumnPath {
	members := make([]PathMember, len(c.Members))
	for i, m := range c.Members {
		members[i] = m
		if m.Index != nil {
			members[i].Index = new(big.Int).Set(m.Index)
		}
	}
	return &ColumnPath{members}
}
