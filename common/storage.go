package common

import (
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
)

// Store is a key-value storage runtime modules keep their state in. It's
// implemented by *storage.MemCachedStore.
type Store interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte)
	Delete(key []byte)
	Seek(rng storage.SeekRange, f func(k, v []byte) bool)
}

// Context is a module-scoped view of the Store. Every key is prefixed with
// the module ID, so modules can't touch each other's items.
type Context struct {
	store Store
	id    byte
}

// NewContext returns Context of the module with the given ID.
func NewContext(s Store, id byte) Context {
	return Context{store: s, id: id}
}

func (c Context) key(parts ...[]byte) []byte {
	n := 1
	for i := range parts {
		n += len(parts[i])
	}

	k := make([]byte, 0, n)
	k = append(k, c.id)
	for i := range parts {
		k = append(k, parts[i]...)
	}

	return k
}

// Get returns the item stored under the concatenation of key parts or nil if
// there is none. Memory stores can only fail with storage.ErrKeyNotFound, so
// any error is treated as a missing item.
func (c Context) Get(parts ...[]byte) []byte {
	v, err := c.store.Get(c.key(parts...))
	if err != nil {
		return nil
	}

	return v
}

// Put stores value under the concatenation of key parts.
func (c Context) Put(value []byte, parts ...[]byte) {
	c.store.Put(c.key(parts...), value)
}

// Delete removes the item stored under the concatenation of key parts.
func (c Context) Delete(parts ...[]byte) {
	c.store.Delete(c.key(parts...))
}

// Find iterates over items with the given key prefix in ascending key order.
// Keys passed to f have the prefix stripped. Iteration stops when f returns
// false.
func (c Context) Find(prefix []byte, f func(k, v []byte) bool) {
	full := c.key(prefix)

	c.store.Seek(storage.SeekRange{Prefix: full}, func(k, v []byte) bool {
		return f(k[len(full):], v)
	})
}
