// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import (
	"errors"

	"github.com/myty/nushell/pkg/value"
)

// ErrNoValue is returned by Store.Value when there is no value with the
// given name.
var ErrNoValue = errors.New("no such value")

// Store is an interface satisfied by the storage service.
type Store interface {
	Value(name string) (value.Value, error)
	SetValue(name string, v value.Value) error
	DelValue(name string) error
	ValueNames() ([]string, error)
}
