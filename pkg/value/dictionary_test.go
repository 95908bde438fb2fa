package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDictionary(t *testing.T) {
	d := NewDictionary(
		Entry{"b", Int(1).IntoUntaggedValue()},
		Entry{"a", Int(2).IntoUntaggedValue()},
	)
	d.Insert("c", Int(3).IntoUntaggedValue())
	d.Insert("b", Int(4).IntoUntaggedValue())

	if diff := cmp.Diff([]string{"b", "a", "c"}, d.Keys()); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
	if v, ok := d.Get("b"); !ok || !v.Equal(Int(4).IntoUntaggedValue()) {
		t.Errorf("Get(b) = %v, %v", v.TypeName(), ok)
	}
	if _, ok := d.Get("z"); ok {
		t.Errorf("Get(z) found a value")
	}

	var visited []string
	d.Iterate(func(k string, v Value) bool {
		visited = append(visited, k)
		return k != "a"
	})
	if diff := cmp.Diff([]string{"b", "a"}, visited); diff != "" {
		t.Errorf("Iterate (-want +got):\n%s", diff)
	}

	if !d.Remove("a") || d.Remove("a") {
		t.Errorf("Remove(a) should succeed exactly once")
	}
	if diff := cmp.Diff([]string{"b", "c"}, d.Keys()); diff != "" {
		t.Errorf("Keys() after Remove (-want +got):\n%s", diff)
	}
	d.Insert("a", Int(5).IntoUntaggedValue())
	if diff := cmp.Diff([]string{"b", "c", "a"}, d.Keys()); diff != "" {
		t.Errorf("Keys() after reinserting (-want +got):\n%s", diff)
	}
}

func TestDictionary_CloneIsIndependent(t *testing.T) {
	d := NewDictionary(Entry{"a", Int(1).IntoUntaggedValue()})
	c := d.Clone()
	c.Insert("b", Int(2).IntoUntaggedValue())
	c.Insert("a", Int(3).IntoUntaggedValue())
	if d.Len() != 1 {
		t.Errorf("inserting into a clone changes the original")
	}
	if v, _ := d.Get("a"); !v.Equal(Int(1).IntoUntaggedValue()) {
		t.Errorf("updating a clone changes the original")
	}
}

func TestDictionary_NilAndZero(t *testing.T) {
	var nilDict *Dictionary
	if nilDict.Len() != 0 || nilDict.Keys() != nil {
		t.Errorf("nil dictionary is not empty")
	}
	if _, ok := nilDict.Get("a"); ok {
		t.Errorf("nil dictionary has a value")
	}
	var zero Dictionary
	zero.Insert("a", Nothing().IntoUntaggedValue())
	if zero.Len() != 1 {
		t.Errorf("zero dictionary is not usable")
	}
}

func TestDictionary_Equal(t *testing.T) {
	ab := NewDictionary(Entry{"a", Int(1).IntoUntaggedValue()}, Entry{"b", Int(2).IntoUntaggedValue()})
	ba := NewDictionary(Entry{"b", Int(2).IntoUntaggedValue()}, Entry{"a", Int(1).IntoUntaggedValue()})
	if !ab.Equal(ab.Clone()) {
		t.Errorf("dictionary is not equal to its clone")
	}
	if ab.Equal(ba) {
		t.Errorf("key order is ignored")
	}
}
