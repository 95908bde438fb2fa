// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/myty/nushell/pkg/diag"
	"github.com/myty/nushell/pkg/store/storedefs"
	"github.com/myty/nushell/pkg/value"
)

// TestValues tests the named value functionality of a Store.
func TestValues(t *testing.T, store storedefs.Store) {
	const name = "people"
	row := value.NewDictionary(
		value.Entry{Key: "name", Value: value.String("alice").IntoValue(diag.NewSpan(0, 5))},
		value.Entry{Key: "age", Value: value.Int(30).IntoUntaggedValue()},
		value.Entry{Key: "file", Value: value.Path("/tmp/\xfe").IntoUntaggedValue()},
		value.Entry{Key: "born", Value: value.Date(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)).IntoUntaggedValue()},
	)
	v := value.Table([]value.Value{value.Row(row).Retag(diag.Tag{
		Anchor: diag.FileAnchor("people.json"), Span: diag.NewSpan(0, 20)})}).IntoUntaggedValue()

	if _, err := store.Value(name); !errors.Is(err, storedefs.ErrNoValue) {
		t.Errorf("Value(%q) -> error %v, want ErrNoValue", name, err)
	}

	if err := store.SetValue(name, v); err != nil {
		t.Errorf("SetValue(%q) -> error %v, want nil", name, err)
	}
	got, err := store.Value(name)
	if err != nil {
		t.Errorf("Value(%q) -> error %v, want nil", name, err)
	}
	if diff := cmp.Diff(v, got); diff != "" {
		t.Errorf("Value(%q) (-want +got):\n%s", name, diff)
	}

	if err := store.SetValue("other", value.Int(1).IntoUntaggedValue()); err != nil {
		t.Errorf("SetValue(other) -> error %v, want nil", err)
	}
	names, err := store.ValueNames()
	if err != nil {
		t.Errorf("ValueNames() -> error %v, want nil", err)
	}
	if diff := cmp.Diff([]string{"other", name}, names); diff != "" {
		t.Errorf("ValueNames() (-want +got):\n%s", diff)
	}

	if err := store.DelValue(name); err != nil {
		t.Errorf("DelValue(%q) -> error %v, want nil", name, err)
	}
	if _, err := store.Value(name); !errors.Is(err, storedefs.ErrNoValue) {
		t.Errorf("Value(%q) after DelValue -> error %v, want ErrNoValue", name, err)
	}
	if err := store.DelValue(name); err != nil {
		t.Errorf("DelValue(%q) again -> error %v, want nil", name, err)
	}
}
