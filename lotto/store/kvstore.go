// Package store persists imported draw histories so classification runs can
// reuse them without re-parsing CSV.
package store

import "errors"

// ErrKeyNotFound is returned by Get for missing keys.
var ErrKeyNotFound = errors.New("key not found")

// KVPair is one key/value entry from a prefix listing.
type KVPair struct {
	Key   string
	Value []byte
}

// KVStore is an interface for a simple key-value store.
type KVStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	List(prefix string) ([]KVPair, error)
	Close() error
}
