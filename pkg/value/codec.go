package value

import (
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/myty/nushell/pkg/diag"
	"github.com/myty/nushell/pkg/primitive"
	"github.com/myty/nushell/pkg/shellerr"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// The serialized form of values. Every payload is an object discriminated by
// its kind, so that the same structs serve both JSON and YAML.

type wireValue struct {
	Tag   diag.Tag     `json:"tag" yaml:"tag"`
	Value wireUntagged `json:"value" yaml:"value"`
}

type wireUntagged struct {
	Kind      string               `json:"kind" yaml:"kind"`
	Primitive *primitive.Wire      `json:"primitive,omitempty" yaml:"primitive,omitempty"`
	Row       []wireEntry          `json:"row,omitempty" yaml:"row,omitempty"`
	Table     []Value              `json:"table,omitempty" yaml:"table,omitempty"`
	Error     *shellerr.ShellError `json:"error,omitempty" yaml:"error,omitempty"`
	Block     *Evaluate            `json:"block,omitempty" yaml:"block,omitempty"`
}

// A key that is not valid UTF-8 travels in RawKey; see primitive.Wire.
type wireEntry struct {
	Key    string `json:"key" yaml:"key"`
	RawKey string `json:"raw_key,omitempty" yaml:"raw_key,omitempty"`
	Value  Value  `json:"value" yaml:"value"`
}

func (v UntaggedValue) toWire() wireUntagged {
	w := wireUntagged{Kind: v.kind.String()}
	switch v.kind {
	case KindPrimitive:
		p := primitive.ToWire(v.prim)
		w.Primitive = &p
	case KindRow:
		v.row.Iterate(func(k string, elem Value) bool {
			e := wireEntry{Value: elem}
			e.Key, e.RawKey = primitive.EncodeText(k)
			w.Row = append(w.Row, e)
			return true
		})
	case KindTable:
		w.Table = v.table
	case KindError:
		w.Error = v.err
	case KindBlock:
		w.Block = v.block
	}
	return w
}

func (w wireUntagged) fromWire() (UntaggedValue, error) {
	k, ok := parseKind(w.Kind)
	if !ok {
		return UntaggedValue{}, fmt.Errorf("unknown value kind %q", w.Kind)
	}
	switch k {
	case KindPrimitive:
		if w.Primitive == nil {
			return UntaggedValue{}, fmt.Errorf("primitive value has no payload")
		}
		p, err := primitive.FromWire(*w.Primitive)
		if err != nil {
			return UntaggedValue{}, err
		}
		return FromPrimitive(p), nil
	case KindRow:
		d := NewDictionary()
		for _, e := range w.Row {
			key, err := primitive.DecodeText(e.Key, e.RawKey)
			if err != nil {
				return UntaggedValue{}, err
			}
			if _, dup := d.Get(key); dup {
				return UntaggedValue{}, fmt.Errorf("duplicate key %q in row", key)
			}
			d.Insert(key, e.Value)
		}
		return Row(d), nil
	case KindTable:
		return UntaggedValue{kind: KindTable, table: w.Table}, nil
	case KindError:
		return Error(w.Error), nil
	default:
		return Block(w.Block), nil
	}
}

func (v Value) toWire() wireValue { return wireValue{v.Tag, v.UntaggedValue.toWire()} }

func (w wireValue) fromWire() (Value, error) {
	u, err := w.Value.fromWire()
	if err != nil {
		return Value{}, err
	}
	return u.Retag(w.Tag), nil
}

// MarshalJSON implements json.Marshaler.
func (v UntaggedValue) MarshalJSON() ([]byte, error) { return json.Marshal(v.toWire()) }

// UnmarshalJSON implements json.Unmarshaler.
func (v *UntaggedValue) UnmarshalJSON(data []byte) error {
	var w wireUntagged
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	u, err := w.fromWire()
	if err != nil {
		return err
	}
	*v = u
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) { return json.Marshal(v.toWire()) }

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w wireValue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	u, err := w.fromWire()
	if err != nil {
		return err
	}
	*v = u
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v UntaggedValue) MarshalYAML() (any, error) { return v.toWire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *UntaggedValue) UnmarshalYAML(node *yaml.Node) error {
	var w wireUntagged
	if err := node.Decode(&w); err != nil {
		return err
	}
	u, err := w.fromWire()
	if err != nil {
		return err
	}
	*v = u
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) { return v.toWire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var w wireValue
	if err := node.Decode(&w); err != nil {
		return err
	}
	u, err := w.fromWire()
	if err != nil {
		return err
	}
	*v = u
	return nil
}

// EncodeJSON returns the JSON encoding of v.
func EncodeJSON(v Value) ([]byte, error) { return json.Marshal(v) }

// DecodeJSON decodes a value encoded by EncodeJSON.
func DecodeJSON(data []byte) (Value, error) {
	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, fmt.Errorf("decode JSON value: %w", err)
	}
	return v, nil
}

// EncodeYAML returns the YAML encoding of v.
func EncodeYAML(v Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeYAML decodes a value encoded by EncodeYAML.
func DecodeYAML(data []byte) (Value, error) {
	var v Value
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Value{}, fmt.Errorf("decode YAML value: %w", err)
	}
	return v, nil
}

// Decoder reads a stream of encoded values.
type Decoder struct {
	more   func() bool
	decode func(any) error
}

// NewJSONDecoder returns a Decoder reading concatenated JSON values from r.
func NewJSONDecoder(r io.Reader) *Decoder {
	dec := json.NewDecoder(r)
	return &Decoder{dec.More, dec.Decode}
}

// NewYAMLDecoder returns a Decoder reading YAML documents from r.
func NewYAMLDecoder(r io.Reader) *Decoder {
	dec := yaml.NewDecoder(r)
	return &Decoder{nil, dec.Decode}
}

// Decode reads the next value. It returns io.EOF when the stream is
// exhausted.
func (d *Decoder) Decode() (Value, error) {
	if d.more != nil && !d.more() {
		return Value{}, io.EOF
	}
	var v Value
	if err := d.decode(&v); err != nil {
		if err == io.EOF {
			return Value{}, io.EOF
		}
		return Value{}, fmt.Errorf("decode value: %w", err)
	}
	return v, nil
}

// Encoder writes a stream of values.
type Encoder struct {
	encode func(any) error
	close  func() error
}

// NewJSONEncoder returns an Encoder writing one JSON value per line to w.
func NewJSONEncoder(w io.Writer) *Encoder {
	enc := json.NewEncoder(w)
	return &Encoder{enc.Encode, func() error { return nil }}
}

// NewYAMLEncoder returns an Encoder writing one YAML document per value to w.
func NewYAMLEncoder(w io.Writer) *Encoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &Encoder{enc.Encode, enc.Close}
}

// Encode writes v.
func (e *Encoder) Encode(v Value) error { return e.encode(v) }

// Close flushes the encoder. It does not close the underlying writer.
func (e *Encoder) Close() error { return e.close() }
