package value

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myty/nushell/pkg/diag"
	"github.com/myty/nushell/pkg/shellerr"
)

var codecs = []struct {
	name   string
	encode func(Value) ([]byte, error)
	decode func([]byte) (Value, error)
}{
	{"JSON", EncodeJSON, DecodeJSON},
	{"YAML", EncodeYAML, DecodeYAML},
}

func TestCodec_RoundTrip(t *testing.T) {
	tags := []diag.Tag{someTag, otherTag, diag.UnknownTag(),
		{Anchor: diag.URLAnchor("https://example.com/x"), Span: diag.NewSpan(1, 2)},
		{Anchor: diag.SourceAnchor("ls | get name"), Span: diag.NewSpan(5, 8)}}
	evalWithID := NewEvaluate("{ ls }", diag.NewSpan(0, 6))
	extra := map[string]UntaggedValue{
		"block with id":   Block(evalWithID),
		"nested error":    Error(someErr.WithCause(shellerr.NewUntaggedRuntime("boom"))),
		"nil error":       Error(nil),
		"nested table":    Table([]Value{Table([]Value{String("deep").Retag(someTag)}).Retag(otherTag)}),
		"tricky string":   String("true"),
		"numeric string":  String("0123"),
		"multiline":       String("a\nb: c"),
		"empty binary":    Binary([]byte{}),
		"row of tables":   Row(NewDictionary(Entry{"t", Table(nil).Retag(someTag)})),
		"negative bigint": Int(-1 << 62),
		"invalid string":  String("a\xffb"),
		"invalid line":    Line("\xc3"),
		"invalid path":    Path("/tmp/\xfe"),
		"invalid key":     Row(NewDictionary(Entry{"k\xff", Int(1).Retag(someTag)})),
		"far future date": Date(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)),
		"far past date":   Date(time.Date(-1, 6, 1, 0, 0, 0, 7, time.UTC)),
	}
	for _, codec := range codecs {
		for name, u := range samples() {
			for _, tag := range tags {
				testRoundTrip(t, codec.name, name, codec.encode, codec.decode, u.Retag(tag))
			}
		}
		for name, u := range extra {
			testRoundTrip(t, codec.name, name, codec.encode, codec.decode, u.Retag(someTag))
		}
	}
}

func testRoundTrip(t *testing.T, codec, name string, encode func(Value) ([]byte, error), decode func([]byte) (Value, error), v Value) {
	t.Helper()
	data, err := encode(v)
	if err != nil {
		t.Errorf("%s %s: encode error %v", codec, name, err)
		return
	}
	got, err := decode(data)
	if err != nil {
		t.Errorf("%s %s: decode error %v\n%s", codec, name, err, data)
		return
	}
	if diff := cmp.Diff(v, got); diff != "" {
		t.Errorf("%s %s: round trip (-want +got):\n%s\nencoded:\n%s", codec, name, diff, data)
	}
}

func TestCodec_PreservesRowOrder(t *testing.T) {
	v := rowOf("z", Int(1), "a", Int(2), "m", Int(3))
	for _, codec := range codecs {
		data, _ := codec.encode(v)
		got, err := codec.decode(data)
		if err != nil {
			t.Fatalf("%s: %v", codec.name, err)
		}
		if diff := cmp.Diff([]string{"z", "a", "m"}, got.DataDescriptors()); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", codec.name, diff)
		}
	}
}

func TestEncodeJSON_Format(t *testing.T) {
	data, err := EncodeJSON(Row(NewDictionary(Entry{"a", Int(1).IntoUntaggedValue()})).IntoValue(diag.NewSpan(0, 4)))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"tag":{"span":{"start":0,"end":4}},"value":{"kind":"row","row":[` +
		`{"key":"a","value":{"tag":{"span":{"start":0,"end":0}},"value":{"kind":"primitive","primitive":{"kind":"int","text":"1"}}}}]}}`
	if string(data) != want {
		t.Errorf("EncodeJSON =\n%s\nwant\n%s", data, want)
	}
}

func TestDecode_Errors(t *testing.T) {
	bad := []string{
		`{"tag":{"span":{"start":0,"end":0}},"value":{"kind":"nope"}}`,
		`{"tag":{"span":{"start":0,"end":0}},"value":{"kind":"primitive"}}`,
		`{"tag":{"span":{"start":0,"end":0}},"value":{"kind":"primitive","primitive":{"kind":"int","text":"1.5"}}}`,
		`{"tag":{"span":{"start":0,"end":0}},"value":{"kind":"row","row":[` +
			`{"key":"a","value":{"tag":{"span":{"start":0,"end":0}},"value":{"kind":"primitive","primitive":{"kind":"nothing"}}}},` +
			`{"key":"a","value":{"tag":{"span":{"start":0,"end":0}},"value":{"kind":"primitive","primitive":{"kind":"nothing"}}}}]}}`,
		`[1, 2]`,
	}
	for _, s := range bad {
		if _, err := DecodeJSON([]byte(s)); err == nil {
			t.Errorf("DecodeJSON(%s) returned no error", s)
		}
		if _, err := DecodeYAML([]byte(s)); err == nil {
			t.Errorf("DecodeYAML(%s) returned no error", s)
		}
	}
}

func TestStreams(t *testing.T) {
	values := []Value{
		Int(1).Retag(someTag),
		rowOf("a", String("x")),
		Table([]Value{Boolean(true).IntoUntaggedValue()}).Retag(otherTag),
	}
	streams := []struct {
		name string
		enc  func(io.Writer) *Encoder
		dec  func(io.Reader) *Decoder
	}{
		{"JSON", NewJSONEncoder, NewJSONDecoder},
		{"YAML", NewYAMLEncoder, NewYAMLDecoder},
	}
	for _, s := range streams {
		var buf bytes.Buffer
		enc := s.enc(&buf)
		for _, v := range values {
			if err := enc.Encode(v); err != nil {
				t.Fatalf("%s: Encode: %v", s.name, err)
			}
		}
		if err := enc.Close(); err != nil {
			t.Fatalf("%s: Close: %v", s.name, err)
		}

		dec := s.dec(&buf)
		var got []Value
		for {
			v, err := dec.Decode()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("%s: Decode: %v", s.name, err)
			}
			got = append(got, v)
		}
		if diff := cmp.Diff(values, got); diff != "" {
			t.Errorf("%s stream (-want +got):\n%s", s.name, diff)
		}
	}
}

func TestDecoder_Empty(t *testing.T) {
	for _, dec := range []*Decoder{NewJSONDecoder(strings.NewReader(" \n")), NewYAMLDecoder(strings.NewReader(""))} {
		if _, err := dec.Decode(); err != io.EOF {
			t.Errorf("Decode on empty input = %v, want io.EOF", err)
		}
	}
}
