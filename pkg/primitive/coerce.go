package primitive

import (
	"github.com/myty/nushell/pkg/diag"
	"github.com/myty/nushell/pkg/shellerr"
)

// AsU64 converts an integer primitive to uint64. The span is used as the
// location of the returned error; the error is a range error when the
// integer is negative or too large, and a type error when p is not an
// integer.
func AsU64(p Primitive, s diag.Span) (uint64, error) {
	i, ok := p.(Int)
	if !ok {
		return 0, shellerr.NewTypeError("integer", diag.SpannedOf(typeName(p), s))
	}
	v := i.Value()
	if !v.IsUint64() {
		return 0, shellerr.NewRangeError("u64", diag.SpannedOf(v.String(), s),
			"converting an integer into a 64-bit integer")
	}
	return v.Uint64(), nil
}

func typeName(p Primitive) string {
	if p == nil {
		return Nothing{}.TypeName()
	}
	return p.TypeName()
}
