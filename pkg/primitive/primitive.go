// Package primitive implements the scalar leaves of structured values:
// strings, numbers, booleans, dates, paths, ranges and so on.
//
// A Primitive is one of the concrete types declared in this package; the set
// is closed. Use a type switch or KindOf to tell them apart.
package primitive

import (
	"bytes"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Primitive is a scalar leaf value.
type Primitive interface {
	// TypeName returns the user-facing name of the primitive's type.
	TypeName() string
	kind() Kind
}

// Kind identifies the concrete type of a Primitive. Kinds are declared in
// the order used to compare primitives of different kinds.
type Kind uint8

// Possible Kind values.
const (
	KindNothing Kind = iota
	KindInt
	KindDecimal
	KindBytes
	KindString
	KindLine
	KindColumnPath
	KindBoolean
	KindDate
	KindDuration
	KindRange
	KindPath
	KindBinary
)

var kindNames = [...]string{
	KindNothing:    "nothing",
	KindInt:        "int",
	KindDecimal:    "decimal",
	KindBytes:      "bytes",
	KindString:     "string",
	KindLine:       "line",
	KindColumnPath: "column-path",
	KindBoolean:    "boolean",
	KindDate:       "date",
	KindDuration:   "duration",
	KindRange:      "range",
	KindPath:       "path",
	KindBinary:     "binary",
}

// String returns the name of the kind used in the serialized form.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "!!unknown-kind"
}

func parseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// KindOf returns the kind of p. A nil Primitive is treated as Nothing.
func KindOf(p Primitive) Kind {
	if p == nil {
		return KindNothing
	}
	return p.kind()
}

type (
	// Nothing is the absence of a value.
	Nothing struct{}
	// Int is an arbitrary-precision integer. A nil *big.Int is zero.
	Int struct{ *big.Int }
	// Decimal is an arbitrary-precision decimal number.
	Decimal struct{ decimal.Decimal }
	// Bytes is a file size, in bytes.
	Bytes uint64
	// String is a piece of text.
	String string
	// Line is a line of text, with its line terminator stripped.
	Line string
	// Boolean is true or false.
	Boolean bool
	// Date is a point in time, always in UTC.
	Date struct{ time.Time }
	// Duration is a length of time, in seconds.
	Duration uint64
	// Path is a filesystem path.
	Path string
	// Binary is a buffer of non-textual data.
	Binary []byte
)

// NewInt returns an Int with the value of i.
func NewInt(i int64) Int { return Int{big.NewInt(i)} }

// NewDate returns a Date for t, converted to UTC.
func NewDate(t time.Time) Date { return Date{t.UTC()} }

func (Nothing) TypeName() string     { return "nothing" }
func (Int) TypeName() string         { return "integer" }
func (Decimal) TypeName() string     { return "decimal" }
func (Bytes) TypeName() string       { return "bytes" }
func (String) TypeName() string      { return "string" }
func (Line) TypeName() string        { return "line" }
func (*ColumnPath) TypeName() string { return "column path" }
func (Boolean) TypeName() string     { return "boolean" }
func (Date) TypeName() string        { return "date" }
func (Duration) TypeName() string    { return "duration" }
func (*Range) TypeName() string      { return "range" }
func (Path) TypeName() string        { return "path" }
func (Binary) TypeName() string      { return "binary" }

func (Nothing) kind() Kind     { return KindNothing }
func (Int) kind() Kind         { return KindInt }
func (Decimal) kind() Kind     { return KindDecimal }
func (Bytes) kind() Kind       { return KindBytes }
func (String) kind() Kind      { return KindString }
func (Line) kind() Kind        { return KindLine }
func (*ColumnPath) kind() Kind { return KindColumnPath }
func (Boolean) kind() Kind     { return KindBoolean }
func (Date) kind() Kind        { return KindDate }
func (Duration) kind() Kind    { return KindDuration }
func (*Range) kind() Kind      { return KindRange }
func (Path) kind() Kind        { return KindPath }
func (Binary) kind() Kind      { return KindBinary }

// Value returns the integer, never nil.
func (i Int) Value() *big.Int {
	if i.Int == nil {
		return new(big.Int)
	}
	return i.Int
}

// String returns the integer in base 10.
func (i Int) String() string { return i.Value().String() }

// The Equal methods below let go-cmp compare primitives whose underlying
// representation has unexported state.

func (i Int) Equal(other Int) bool { return i.Value().Cmp(other.Value()) == 0 }

func (d Decimal) Equal(other Decimal) bool { return d.Cmp(other.Decimal) == 0 }

func (d Date) Equal(other Date) bool { return d.Time.Equal(other.Time) }

func (b Binary) Equal(other Binary) bool { return bytes.Equal(b, other) }

// Clone returns a deep copy of p. Primitives of immutable underlying types are
// returned as is.
func Clone(p Primitive) Primitive {
	switch p := p.(type) {
	case nil:
		return Nothing{}
	case Int:
		return Int{new(big.Int).Set(p.Value())}
	case Binary:
		if p == nil {
			return p
		}
		return append(Binary{}, p...)
	case *ColumnPath:
		return p.Clone()
	case *Range:
		return p.Clone()
	default:
		return p
	}
}
