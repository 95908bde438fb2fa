package value

import (
	"github.com/myty/nushell/pkg/diag"
	"github.com/myty/nushell/pkg/primitive"
	"github.com/myty/nushell/pkg/shellerr"
)

// Value is a structured value with its provenance. It is the unit passed
// between pipeline stages.
type Value struct {
	UntaggedValue
	Tag diag.Tag
}

// StringValue returns a string value for text that was not parsed from any
// source. Its span covers the whole string.
func StringValue(s string) Value {
	return String(s).Retag(diag.NewSpan(0, len(s)).Tag())
}

// Anchor returns the source the value came from, or nil if it was
// synthesized.
func (v Value) Anchor() *diag.AnchorLocation { return v.Tag.Anchor }

// AnchorName returns the URL or file path the value came from.
func (v Value) AnchorName() (string, bool) { return v.Tag.AnchorName() }

// Span returns the location of the value.
func (v Value) Span() diag.Span { return v.Tag.Span }

// SpannedTypeName returns the type name of the value at its location.
func (v Value) SpannedTypeName() diag.Spanned[string] {
	return diag.SpannedOf(v.TypeName(), v.Tag.Span)
}

// Untagged returns the payload, dropping the provenance.
func (v Value) Untagged() UntaggedValue { return v.UntaggedValue }

// Payload returns the payload of v without copying it. Changes made through
// the pointer are visible in v.
func (v *Value) Payload() *UntaggedValue { return &v.UntaggedValue }

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	return Value{UntaggedValue: v.UntaggedValue.Clone(), Tag: cloneTag(v.Tag)}
}

func cloneTag(t diag.Tag) diag.Tag {
	if t.Anchor != nil {
		a := *t.Anchor
		t.Anchor = &a
	}
	return t
}

func (v Value) typeError(expected string) *shellerr.ShellError {
	return shellerr.NewTypeError(expected, v.SpannedTypeName())
}

// AsString returns the text of a string or a line. A line gets its line
// terminator back.
func (v Value) AsString() (string, error) {
	p, _ := v.Primitive()
	switch p := p.(type) {
	case primitive.String:
		return string(p), nil
	case primitive.Line:
		return string(p) + "\n", nil
	}
	return "", v.typeError("string")
}

// AsForgivingString returns the text of a string. Unlike AsString, it does not
// accept lines.
func (v Value) AsForgivingString() (string, error) {
	p, _ := v.Primitive()
	if s, ok := p.(primitive.String); ok {
		return string(s), nil
	}
	return "", v.typeError("string")
}

// AsPath returns a path, or a string interpreted as a path.
func (v Value) AsPath() (string, error) {
	p, _ := v.Primitive()
	switch p := p.(type) {
	case primitive.Path:
		return string(p), nil
	case primitive.String:
		return string(p), nil
	}
	return "", v.typeError("path")
}

// AsPrimitive returns the primitive payload.
func (v Value) AsPrimitive() (primitive.Primitive, error) {
	if p, ok := v.Primitive(); ok {
		return p, nil
	}
	return nil, v.typeError("primitive")
}

// AsU64 converts an integer to uint64.
func (v Value) AsU64() (uint64, error) {
	p, ok := v.Primitive()
	if !ok {
		return 0, v.typeError("integer")
	}
	return primitive.AsU64(p, v.Tag.Span)
}

// AsBool returns the boolean payload. Other kinds are not converted.
func (v Value) AsBool() (bool, error) {
	p, _ := v.Primitive()
	if b, ok := p.(primitive.Boolean); ok {
		return bool(b), nil
	}
	return false, v.typeError("boolean")
}
