// Package value implements the structured values that flow between the stages
// of a pipeline.
//
// An UntaggedValue is the payload: a primitive, a row, a table, an error or a
// block. A Value pairs a payload with the Tag recording where it came from.
// The payload methods are promoted through Value, so every predicate on
// UntaggedValue can be called on a Value directly.
//
// Slices and dictionaries inside a value are not copied when the value is
// passed around. A stage that keeps a value after handing it to another stage
// must Clone it first.
package value

import (
	"github.com/myty/nushell/pkg/diag"
	"github.com/myty/nushell/pkg/primitive"
	"github.com/myty/nushell/pkg/shellerr"
)

// Kind identifies the variant of an UntaggedValue. Kinds are declared in the
// order used to compare values of different kinds.
type Kind uint8

// Possible Kind values.
const (
	KindPrimitive Kind = iota
	KindRow
	KindTable
	KindError
	KindBlock
)

var kindNames = [...]string{
	KindPrimitive: "primitive",
	KindRow:       "row",
	KindTable:     "table",
	KindError:     "error",
	KindBlock:     "block",
}

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

// UntaggedValue is a structured value without provenance. Exactly one variant
// is active; construct it with the helpers in this package. The zero value is
// the nothing primitive.
type UntaggedValue struct {
	kind  Kind
	prim  primitive.Primitive
	row   *Dictionary
	table []Value
	err   *shellerr.ShellError
	block *Evaluate
}

// Kind returns the active variant.
func (v UntaggedValue) Kind() Kind { return v.kind }

// Primitive returns the primitive payload, if the value is a primitive.
func (v UntaggedValue) Primitive() (primitive.Primitive, bool) {
	if v.kind != KindPrimitive {
		return nil, false
	}
	if v.prim == nil {
		return primitive.Nothing{}, true
	}
	return v.prim, true
}

// Row returns the dictionary payload, if the value is a row.
func (v UntaggedValue) Row() (*Dictionary, bool) {
	if v.kind != KindRow {
		return nil, false
	}
	return v.row, true
}

// Table returns the elements, if the value is a table. The returned slice is
// shared with the value.
func (v UntaggedValue) Table() ([]Value, bool) {
	if v.kind != KindTable {
		return nil, false
	}
	return v.table, true
}

// ShellError returns the error payload, if the value is an error.
func (v UntaggedValue) ShellError() (*shellerr.ShellError, bool) {
	if v.kind != KindError {
		return nil, false
	}
	return v.err, true
}

// Block returns the block payload, if the value is a block.
func (v UntaggedValue) Block() (*Evaluate, bool) {
	if v.kind != KindBlock {
		return nil, false
	}
	return v.block, true
}

// IsNone reports whether the value is the nothing primitive.
func (v UntaggedValue) IsNone() bool {
	p, ok := v.Primitive()
	if !ok {
		return false
	}
	_, ok = p.(primitive.Nothing)
	return ok
}

// IsSome is the negation of IsNone. It is not a truthiness test.
func (v UntaggedValue) IsSome() bool { return !v.IsNone() }

// IsTrue reports whether the value is the boolean true.
func (v UntaggedValue) IsTrue() bool {
	p, _ := v.Primitive()
	b, ok := p.(primitive.Boolean)
	return ok && bool(b)
}

// IsError reports whether the value is an error.
func (v UntaggedValue) IsError() bool { return v.kind == KindError }

// ExpectError returns the error payload. It panics if the value is not an
// error; use it only when the kind has already been checked.
func (v UntaggedValue) ExpectError() *shellerr.ShellError {
	if v.kind != KindError {
		panic("value: ExpectError called on a " + v.TypeName())
	}
	return v.err
}

// ExpectString returns the string payload. It panics if the value is not a
// string primitive.
func (v UntaggedValue) ExpectString() string {
	p, _ := v.Primitive()
	s, ok := p.(primitive.String)
	if !ok {
		panic("value: ExpectString called on a " + v.TypeName())
	}
	return string(s)
}

// TypeName returns the user-facing name of the value's type.
func (v UntaggedValue) TypeName() string {
	switch v.kind {
	case KindPrimitive:
		p, _ := v.Primitive()
		return p.TypeName()
	default:
		return v.kind.String()
	}
}

// DataDescriptors returns the column names of a row, in insertion order. It
// returns nil for every other kind, tables included.
func (v UntaggedValue) DataDescriptors() []string {
	if v.kind != KindRow {
		return nil
	}
	return v.row.Keys()
}

// Retag returns a Value with the same payload and the given tag.
func (v UntaggedValue) Retag(tag diag.Tag) Value {
	return Value{UntaggedValue: v, Tag: tag}
}

// IntoValue returns a Value tagged with the tag of t.
func (v UntaggedValue) IntoValue(t diag.Tagger) Value { return v.Retag(t.Tag()) }

// IntoUntaggedValue returns a Value with the unknown tag.
func (v UntaggedValue) IntoUntaggedValue() Value { return v.Retag(diag.UnknownTag()) }

// Clone returns a deep copy of v.
func (v UntaggedValue) Clone() UntaggedValue {
	switch v.kind {
	case KindPrimitive:
		if v.prim != nil {
			v.prim = primitive.Clone(v.prim)
		}
	case KindRow:
		v.row = v.row.Clone()
	case KindTable:
		if v.table != nil {
			table := make([]Value, len(v.table))
			for i, elem := range v.table {
				table[i] = elem.Clone()
			}
			v.table = table
		}
	case KindError:
		v.err = v.err.Clone()
	case KindBlock:
		if v.block != nil {
			b := *v.block
			v.block = &b
		}
	}
	return v
}
