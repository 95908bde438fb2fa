package primitive

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"time"
	"unicode/utf8"

	"github.com/myty/nushell/pkg/diag"
	"github.com/shopspring/decimal"
)

// Wire is the serialized form of a Primitive. It is designed to survive both
// JSON and YAML: integers and decimals travel as text so that no precision is
// lost, dates as RFC 3339 with nanoseconds and binary data as base64.
//
// Text that is not valid UTF-8 travels in Raw as base64, since JSON encoders
// replace invalid bytes. Dates whose year has more than four digits travel as
// Unix seconds in Sec and nanoseconds in Uint, since RFC 3339 cannot express
// them.
type Wire struct {
	Kind    string       `json:"kind" yaml:"kind"`
	Text    string       `json:"text,omitempty" yaml:"text,omitempty"`
	Raw     string       `json:"raw,omitempty" yaml:"raw,omitempty"`
	Sec     int64        `json:"sec,omitempty" yaml:"sec,omitempty"`
	Bool    bool         `json:"bool,omitempty" yaml:"bool,omitempty"`
	Uint    uint64       `json:"uint,omitempty" yaml:"uint,omitempty"`
	Members []WireMember `json:"members,omitempty" yaml:"members,omitempty"`
	From    *WireBound   `json:"from,omitempty" yaml:"from,omitempty"`
	To      *WireBound   `json:"to,omitempty" yaml:"to,omitempty"`
}

// WireMember is the serialized form of a PathMember.
type WireMember struct {
	Kind MemberKind `json:"kind" yaml:"kind"`
	Text string     `json:"text" yaml:"text"`
	Raw  string     `json:"raw,omitempty" yaml:"raw,omitempty"`
	Span diag.Span  `json:"span" yaml:"span"`
}

// WireBound is the serialized form of a RangeBound.
type WireBound struct {
	Value     Wire           `json:"value" yaml:"value"`
	Span      diag.Span      `json:"span" yaml:"span"`
	Inclusion RangeInclusion `json:"inclusion" yaml:"inclusion"`
}

// ToWire converts p to its serialized form.
func ToWire(p Primitive) Wire {
	w := Wire{Kind: KindOf(p).String()}
	switch p := p.(type) {
	case Int:
		w.Text = p.String()
	case Decimal:
		w.Text = p.String()
	case Bytes:
		w.Uint = uint64(p)
	case String:
		w.Text, w.Raw = EncodeText(string(p))
	case Line:
		w.Text, w.Raw = EncodeText(string(p))
	case *ColumnPath:
		for _, m := range p.Members {
			wm := WireMember{Kind: m.Kind, Span: m.Span}
			wm.Text, wm.Raw = EncodeText(m.String())
			w.Members = append(w.Members, wm)
		}
	case Boolean:
		w.Bool = bool(p)
	case Date:
		if y := p.Year(); 0 <= y && y <= 9999 {
			w.Text = p.Format(time.RFC3339Nano)
		} else {
			w.Sec, w.Uint = p.Unix(), uint64(p.Nanosecond())
		}
	case Duration:
		w.Uint = uint64(p)
	case *Range:
		w.From = boundToWire(p.From)
		w.To = boundToWire(p.To)
	case Path:
		w.Text, w.Raw = EncodeText(string(p))
	case Binary:
		w.Text = base64.StdEncoding.EncodeToString(p)
	}
	return w
}

// EncodeText returns s as text when it is valid UTF-8, and as base64 raw
// bytes otherwise.
func EncodeText(s string) (text, raw string) {
	if utf8.ValidString(s) {
		return s, ""
	}
	return "", base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeText reverses EncodeText.
func DecodeText(text, raw string) (string, error) {
	if raw == "" {
		return text, nil
	}
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("bad raw text: %w", err)
	}
	return string(b), nil
}

func boundToWire(b RangeBound) *WireBound {
	return &WireBound{ToWire(b.Value.Item), b.Value.Span, b.Inclusion}
}

// FromWire converts a serialized primitive back.
func FromWire(w Wire) (Primitive, error) {
	k, ok := parseKind(w.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown primitive kind %q", w.Kind)
	}
	switch k {
	case KindNothing:
		return Nothing{}, nil
	case KindInt:
		i, ok := new(big.Int).SetString(w.Text, 10)
		if !ok {
			return nil, fmt.Errorf("bad integer %q", w.Text)
		}
		return Int{i}, nil
	case KindDecimal:
		d, err := decimal.NewFromString(w.Text)
		if err != nil {
			return nil, fmt.Errorf("bad decimal %q: %w", w.Text, err)
		}
		return Decimal{d}, nil
	case KindBytes:
		return Bytes(w.Uint), nil
	case KindString, KindLine, KindPath:
		text, err := DecodeText(w.Text, w.Raw)
		if err != nil {
			return nil, err
		}
		switch k {
		case KindString:
			return String(text), nil
		case KindLine:
			return Line(text), nil
		}
		return Path(text), nil
	case KindColumnPath:
		path := &ColumnPath{}
		for _, m := range w.Members {
			member, err := memberFromWire(m)
			if err != nil {
				return nil, err
			}
			path.Members = append(path.Members, member)
		}
		return path, nil
	case KindBoolean:
		return Boolean(w.Bool), nil
	case KindDate:
		if w.Text == "" {
			if w.Uint >= uint64(time.Second) {
				return nil, fmt.Errorf("bad date: %d nanoseconds", w.Uint)
			}
			return NewDate(time.Unix(w.Sec, int64(w.Uint))), nil
		}
		t, err := time.Parse(time.RFC3339Nano, w.Text)
		if err != nil {
			return nil, fmt.Errorf("bad date: %w", err)
		}
		return NewDate(t), nil
	case KindDuration:
		return Duration(w.Uint), nil
	case KindRange:
		if w.From == nil || w.To == nil {
			return nil, fmt.Errorf("range is missing an endpoint")
		}
		from, err := boundFromWire(w.From)
		if err != nil {
			return nil, err
		}
		to, err := boundFromWire(w.To)
		if err != nil {
			return nil, err
		}
		return NewRange(from, to), nil
	case KindBinary:
		b, err := base64.StdEncoding.DecodeString(w.Text)
		if err != nil {
			return nil, fmt.Errorf("bad binary: %w", err)
		}
		return Binary(b), nil
	}
	panic("unreachable")
}

func memberFromWire(m WireMember) (PathMember, error) {
	switch m.Kind {
	case MemberString:
		text, err := DecodeText(m.Text, m.Raw)
		if err != nil {
			return PathMember{}, err
		}
		return StringMember(text, m.Span), nil
	case MemberInt:
		i, ok := new(big.Int).SetString(m.Text, 10)
		if !ok {
			return PathMember{}, fmt.Errorf("bad column path index %q", m.Text)
		}
		return PathMember{Kind: MemberInt, Index: i, Span: m.Span}, nil
	}
	return PathMember{}, fmt.Errorf("unknown column path member kind %q", m.Kind)
}

func boundFromWire(w *WireBound) (RangeBound, error) {
	p, err := FromWire(w.Value)
	if err != nil {
		return RangeBound{}, err
	}
	switch w.Inclusion {
	case Inclusive, Exclusive:
	default:
		return RangeBound{}, fmt.Errorf("unknown range inclusion %q", w.Inclusion)
	}
	return RangeBound{diag.SpannedOf(p, w.Span), w.Inclusion}, nil
}
