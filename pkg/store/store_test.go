package store_test

import (
	"path/filepath"
	"testing"

	"github.com/myty/nushell/pkg/store"
	"github.com/myty/nushell/pkg/store/storetest"
	"github.com/myty/nushell/pkg/value"
)

func TestValues(t *testing.T) {
	storetest.TestValues(t, store.MustTempStore(t))
}

func TestNewStore_Reopen(t *testing.T) {
	dbname := filepath.Join(t.TempDir(), "db")
	st, err := store.NewStore(dbname)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.SetValue("x", value.StringValue("kept")); err != nil {
		t.Fatal(err)
	}
	st.Close()

	st, err = store.NewStore(dbname)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	v, err := st.Value("x")
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(value.StringValue("kept")) {
		t.Errorf("value did not survive reopening")
	}
}

func TestNewStore_BadPath(t *testing.T) {
	_, err := store.NewStore(filepath.Join(t.TempDir(), "missing", "db"))
	if err == nil {
		t.Errorf("NewStore in a missing directory returned no error")
	}
}
