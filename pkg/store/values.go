package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	. "github.com/myty/nushell/pkg/store/storedefs"
	"github.com/myty/nushell/pkg/value"
)

func init() {
	initDB["initialize value table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketValue))
		return err
	}
}

// Value gets the value stored under a name.
func (s *dbStore) Value(name string) (value.Value, error) {
	var v value.Value
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketValue))
		data := b.Get([]byte(name))
		if data == nil {
			return ErrNoValue
		}
		var err error
		v, err = value.DecodeJSON(data)
		if err != nil {
			return fmt.Errorf("value %q: %w", name, err)
		}
		return nil
	})
	return v, err
}

// SetValue stores a value under a name, replacing any previous value.
func (s *dbStore) SetValue(name string, v value.Value) error {
	data, err := value.EncodeJSON(v)
	if err != nil {
		return fmt.Errorf("encode value %q: %w", name, err)
	}
	logger.Debugf("storing %s (%d bytes)", name, len(data))
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketValue))
		return b.Put([]byte(name), data)
	})
}

// DelValue deletes the value stored under a name. Deleting a missing value is
// not an error.
func (s *dbStore) DelValue(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketValue))
		return b.Delete([]byte(name))
	})
}

// ValueNames returns the names of all stored values, in byte order.
func (s *dbStore) ValueNames() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketValue))
		return b.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
