// Package store defines the permanent storage service of named values.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/myty/nushell/pkg/logutil"
	. "github.com/myty/nushell/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

const bucketValue = "value"

// initDB holds the initializers of the database schema, run on every open.
var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the permanent storage backend.
type DBStore interface {
	Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

func dbWithDefaultOptions(dbname string) (*bolt.DB, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	return db, err
}

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (DBStore, error) {
	db, err := dbWithDefaultOptions(dbname)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", dbname, err)
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Debugf("initializing store from %s", db.Path())
	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &dbStore{db: db}, nil
}

// Close closes the store.
func (s *dbStore) Close() error {
	return s.db.Close()
}
