package value

import "github.com/speakeasy-api/openapi/sequencedmap"

// Dictionary is a map from column names to values that remembers the order
// in which the keys were first inserted. The zero value is an empty
// dictionary ready to use.
type Dictionary struct {
	m *sequencedmap.Map[string, Value]
}

// Entry is a key-value pair of a Dictionary.
type Entry struct {
	Key   string
	Value Value
}

// NewDictionary returns a dictionary with the given entries, inserted in
// order.
func NewDictionary(entries ...Entry) *Dictionary {
	d := &Dictionary{m: sequencedmap.New[string, Value]()}
	for _, e := range entries {
		d.Insert(e.Key, e.Value)
	}
	return d
}

// Insert sets the value of a key. A key that is already present keeps its
// position.
func (d *Dictionary) Insert(key string, v Value) {
	if d.m == nil {
		d.m = sequencedmap.New[string, Value]()
	}
	d.m.Set(key, v)
}

// Remove deletes a key, reporting whether it was present.
func (d *Dictionary) Remove(key string) bool {
	if d.Len() == 0 || !d.m.Has(key) {
		return false
	}
	d.m.Delete(key)
	return true
}

// Get returns the value of a key.
func (d *Dictionary) Get(key string) (Value, bool) {
	if d.Len() == 0 {
		return Value{}, false
	}
	return d.m.Get(key)
}

// Keys returns the keys in insertion order.
func (d *Dictionary) Keys() []string {
	if d.Len() == 0 {
		return nil
	}
	keys := make([]string, 0, d.Len())
	for k := range d.m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil || d.m == nil {
		return 0
	}
	return d.m.Len()
}

// Iterate calls f for each entry in insertion order, stopping when f returns
// false.
func (d *Dictionary) Iterate(f func(key string, v Value) bool) {
	if d.Len() == 0 {
		return
	}
	for k, v := range d.m.All() {
		if !f(k, v) {
			return
		}
	}
}

// Clone returns a deep copy of d.
func (d *Dictionary) Clone() *Dictionary {
	c := NewDictionary()
	d.Iterate(func(k string, v Value) bool {
		c.Insert(k, v.Clone())
		return true
	})
	return c
}

// Equal reports whether d and other have the same entries in the same order,
// comparing tags.
func (d *Dictionary) Equal(other *Dictionary) bool {
	return compareDict(d, other, true) == 0
}
