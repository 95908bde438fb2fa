package primitive

import (
	"testing"
	"time"

	"github.com/myty/nushell/pkg/diag"
	"github.com/myty/nushell/pkg/tt"
)

func TestWire_RoundTrip(t *testing.T) {
	for _, p := range samples {
		got, err := FromWire(ToWire(p))
		if err != nil {
			t.Errorf("FromWire(ToWire(%v)) -> error %v", p, err)
			continue
		}
		if !Equal(got, p) {
			t.Errorf("FromWire(ToWire(%v)) = %v", p, got)
		}
	}
}

var edgeSamples = []Primitive{
	String("a\xffb"),
	Line("\xc3"),
	Path("/tmp/\xfe"),
	String(""),
	NewColumnPath(StringMember("bad\x80key", diag.NewSpan(0, 3))),
	NewDate(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)),
	NewDate(time.Date(-44, 3, 15, 12, 0, 0, 5, time.UTC)),
	NewDate(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)),
	NewDate(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)),
}

func TestWire_RoundTripEdges(t *testing.T) {
	for _, p := range edgeSamples {
		got, err := FromWire(ToWire(p))
		if err != nil {
			t.Errorf("FromWire(ToWire(%q)) -> error %v", Format(p), err)
			continue
		}
		if !Equal(got, p) {
			t.Errorf("FromWire(ToWire(%q)) = %q", Format(p), Format(got))
		}
	}
}

func TestToWire_InvalidUTF8UsesRaw(t *testing.T) {
	w := ToWire(String("a\xffb"))
	if w.Text != "" || w.Raw != "Yf9i" {
		t.Errorf("ToWire(String(\"a\\xffb\")) = text %q raw %q", w.Text, w.Raw)
	}
	if w := ToWire(String("plain")); w.Raw != "" {
		t.Errorf("valid UTF-8 is carried raw")
	}
}

func TestFromWire_Errors(t *testing.T) {
	tt.Test(t, FromWire,
		Args(Wire{Kind: "bogus"}).Rets(Any, tt.ErrorWithMessage(`unknown primitive kind "bogus"`)),
		Args(Wire{Kind: "int", Text: "x"}).Rets(Any, tt.ErrorWithMessage(`bad integer "x"`)),
		Args(Wire{Kind: "range"}).Rets(Any, tt.ErrorWithMessage("range is missing an endpoint")),
		Args(Wire{Kind: "column-path", Members: []WireMember{{Kind: "float"}}}).
			Rets(Any, tt.ErrorWithMessage(`unknown column path member kind "float"`)),
		Args(Wire{Kind: "range", From: &WireBound{Value: Wire{Kind: "int", Text: "1"}}, To: &WireBound{Value: Wire{Kind: "int", Text: "1"}}}).
			Rets(Any, tt.ErrorWithMessage(`unknown range inclusion ""`)),
		Args(Wire{Kind: "string", Raw: "!!"}).
			Rets(Any, tt.ErrorWithMessage("bad raw text: illegal base64 data at input byte 0")),
		Args(Wire{Kind: "date", Uint: uint64(time.Second)}).
			Rets(Any, tt.ErrorWithMessage("bad date: 1000000000 nanoseconds")),
	)
}
