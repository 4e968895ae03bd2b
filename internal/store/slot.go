// Package store keeps the in-memory todo collection and a durable slot in step.
//
// A Slot is a single string-keyed blob: the whole collection is serialized
// as a JSON array and overwritten on every save. Backends live in the
// jsonstore, diskvstore and sqlitestore subpackages.
package store

import "errors"

// ErrNotFound is returned by Slot.Read when the key has never been written.
var ErrNotFound = errors.New("slot not found")

// Slot is a durable string-keyed value.
type Slot interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Close() error
}
