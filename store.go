package model

// Store is the shared keyed-store contract. Implementations are in-memory
// and synchronous; none provide internal locking unless noted.
type Store[K comparable, V any] interface {
	Driver() Driver
	Has(key K) bool
	Get(key K) (V, bool)
	Set(key K, value V)
	Delete(key K) bool
	Clear()
	Len() int
	Range(fn func(key K, value V) bool)
}
