package value

import (
	"math/big"
	"time"

	"github.com/myty/nushell/pkg/primitive"
	"github.com/myty/nushell/pkg/shellerr"
	"github.com/shopspring/decimal"
)

// FromPrimitive wraps a primitive. A nil primitive, including a nil
// *ColumnPath or *Range, is nothing.
func FromPrimitive(p primitive.Primitive) UntaggedValue {
	switch p := p.(type) {
	case primitive.Nothing:
		return Nothing()
	case *primitive.ColumnPath:
		if p == nil {
			return Nothing()
		}
	case *primitive.Range:
		if p == nil {
			return Nothing()
		}
	}
	return UntaggedValue{kind: KindPrimitive, prim: p}
}

// FromString wraps a string.
func FromString(s string) UntaggedValue { return String(s) }

// FromError wraps an error.
func FromError(e *shellerr.ShellError) UntaggedValue { return Error(e) }

// String returns a string.
func String(s string) UntaggedValue { return FromPrimitive(primitive.String(s)) }

// Pattern returns a glob pattern. Patterns are currently plain strings.
func Pattern(s string) UntaggedValue { return String(s) }

// Line returns a line of text. The line terminator must already be stripped.
func Line(s string) UntaggedValue { return FromPrimitive(primitive.Line(s)) }

// Int returns an integer.
func Int(i int64) UntaggedValue { return FromPrimitive(primitive.NewInt(i)) }

// BigInt returns an integer. The value takes ownership of i.
func BigInt(i *big.Int) UntaggedValue { return FromPrimitive(primitive.Int{Int: i}) }

// Boolean returns a boolean.
func Boolean(b bool) UntaggedValue { return FromPrimitive(primitive.Boolean(b)) }

// Decimal returns a decimal number.
func Decimal(d decimal.Decimal) UntaggedValue {
	return FromPrimitive(primitive.Decimal{Decimal: d})
}

// Bytes returns a file size.
func Bytes(n uint64) UntaggedValue { return FromPrimitive(primitive.Bytes(n)) }

// Path returns a file system path.
func Path(p string) UntaggedValue { return FromPrimitive(primitive.Path(p)) }

// Binary returns binary data. The value takes ownership of b.
func Binary(b []byte) UntaggedValue { return FromPrimitive(primitive.Binary(b)) }

// Duration returns a duration of the given number of seconds.
func Duration(secs uint64) UntaggedValue { return FromPrimitive(primitive.Duration(secs)) }

// Date returns a date. The time is converted to UTC.
func Date(t time.Time) UntaggedValue { return FromPrimitive(primitive.NewDate(t)) }

// SystemDate returns a date for a time reported by the operating system, such
// as a file modification time. The monotonic clock reading is dropped and the
// time is converted to UTC.
func SystemDate(t time.Time) UntaggedValue { return Date(t.Round(0)) }

// Range returns a range between two bounds.
func Range(from, to primitive.RangeBound) UntaggedValue {
	return FromPrimitive(primitive.NewRange(from, to))
}

// ColumnPath returns a column path of the given members.
func ColumnPath(members ...primitive.PathMember) UntaggedValue {
	return FromPrimitive(primitive.NewColumnPath(members...))
}

// Nothing returns the absence of a value.
func Nothing() UntaggedValue { return UntaggedValue{} }

// Row returns a row. A nil dictionary is an empty row.
func Row(d *Dictionary) UntaggedValue {
	if d == nil {
		d = NewDictionary()
	}
	return UntaggedValue{kind: KindRow, row: d}
}

// Table returns a table of the given elements. The slice is copied; the
// elements are not.
func Table(elems []Value) UntaggedValue {
	return UntaggedValue{kind: KindTable, table: append([]Value(nil), elems...)}
}

// Error returns an error used as data. A nil error is allowed.
func Error(e *shellerr.ShellError) UntaggedValue {
	return UntaggedValue{kind: KindError, err: e}
}

// Block returns a block of deferred code.
func Block(e *Evaluate) UntaggedValue {
	return UntaggedValue{kind: KindBlock, block: e}
}
