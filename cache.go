package model

import "fmt"

// Producer computes a value for key. Returning ok=false reports an absent
// result; what the cache does with absence depends on the calling operation.
type Producer[K comparable, V any] func(key K) (V, bool, error)

// Cache provides a memoizing API on top of Store. Plain reads and writes
// delegate to the backing store; GetWith and SetWith add the producing
// operations. Entries may hold any value including the zero value, which
// stays distinguishable from absence through the ok results.
type Cache[K comparable, V any] struct {
	store    Store[K, V]
	observer Observer
}

// NewCache creates a cache facade bound to a concrete store.
// @group Cache
//
// Example: cache from store
//
//	c := model.NewCache(model.NewMapStore[string, int]())
//	fmt.Println(c.Driver()) // map
func NewCache[K comparable, V any](store Store[K, V]) *Cache[K, V] {
	return &Cache[K, V]{store: store}
}

// NewMapCache is a convenience for a cache over a fresh map store.
// @group Cache
//
// Example: map-backed cache
//
//	c := model.NewMapCache[string, string]()
//	c.Set("greeting", "hello")
//	value, ok := c.Get("greeting")
//	fmt.Println(ok, value) // true hello
func NewMapCache[K comparable, V any]() *Cache[K, V] {
	return NewCache(NewMapStore[K, V]())
}

// WithObserver attaches an observer to receive operation events.
func (c *Cache[K, V]) WithObserver(o Observer) *Cache[K, V] {
	c.observer = o
	return c
}

// Store returns the underlying store implementation.
func (c *Cache[K, V]) Store() Store[K, V] {
	return c.store
}

// Driver reports the underlying store driver.
// @group Cache
func (c *Cache[K, V]) Driver() Driver {
	return c.store.Driver()
}

// Has reports whether key holds an entry.
func (c *Cache[K, V]) Has(key K) bool {
	return c.store.Has(key)
}

// Get returns the value for key when present. No producer is ever invoked.
// @group Cache
func (c *Cache[K, V]) Get(key K) (V, bool) {
	value, ok := c.store.Get(key)
	c.observe("get", key, ok, nil)
	return value, ok
}

// Set writes value under key, overwriting any existing entry.
// @group Cache
func (c *Cache[K, V]) Set(key K, value V) {
	c.store.Set(key, value)
	c.observe("set", key, false, nil)
}

// Delete removes the entry for key and reports whether one existed.
// @group Cache
func (c *Cache[K, V]) Delete(key K) bool {
	existed := c.store.Delete(key)
	c.observe("delete", key, existed, nil)
	return existed
}

// Clear removes every entry.
func (c *Cache[K, V]) Clear() {
	c.store.Clear()
}

// Len reports the number of entries.
func (c *Cache[K, V]) Len() int {
	return c.store.Len()
}

// Range visits entries in store order until fn returns false.
func (c *Cache[K, V]) Range(fn func(key K, value V) bool) {
	c.store.Range(fn)
}

// GetWith returns the value for key, computing and storing it through fn on
// a miss. A present entry is returned as-is and fn is not invoked. On a
// miss, a present fn result is stored and returned; an absent result is
// returned without storing. A nil fn behaves like a plain read.
// @group Cache
//
// Example: compute on first miss
//
//	c := model.NewMapCache[string, int]()
//	calls := 0
//	area, _, _ := c.GetWith("answer", func(string) (int, bool, error) {
//		calls++
//		return 42, true, nil
//	})
//	again, _, _ := c.GetWith("answer", func(string) (int, bool, error) {
//		calls++
//		return 0, true, nil
//	})
//	fmt.Println(area, again, calls) // 42 42 1
func (c *Cache[K, V]) GetWith(key K, fn Producer[K, V]) (V, bool, error) {
	if value, ok := c.store.Get(key); ok {
		c.observe("get_with", key, true, nil)
		return value, true, nil
	}
	var zero V
	if fn == nil {
		c.observe("get_with", key, false, nil)
		return zero, false, nil
	}
	value, ok, err := fn(key)
	if err != nil {
		c.observe("get_with", key, false, err)
		return zero, false, err
	}
	if !ok {
		c.observe("get_with", key, false, nil)
		return zero, false, nil
	}
	c.store.Set(key, value)
	c.observe("get_with", key, true, nil)
	return value, true, nil
}

// SetWith always invokes fn and stores a present result, overwriting any
// existing entry. On an absent result the entry for key is removed when
// deleteOnAbsent is true and left untouched otherwise. A nil fn fails with
// ErrNilProducer; a producer error propagates and never mutates the store.
// @group Cache
//
// Example: recompute and drop on absence
//
//	c := model.NewMapCache[string, string]()
//	c.Set("session", "stale")
//	_, _, _ = c.SetWith("session", func(string) (string, bool, error) {
//		return "", false, nil
//	}, true)
//	fmt.Println(c.Has("session")) // false
func (c *Cache[K, V]) SetWith(key K, fn Producer[K, V], deleteOnAbsent bool) (V, bool, error) {
	var zero V
	if fn == nil {
		c.observe("set_with", key, false, ErrNilProducer)
		return zero, false, ErrNilProducer
	}
	value, ok, err := fn(key)
	if err != nil {
		c.observe("set_with", key, false, err)
		return zero, false, err
	}
	if !ok {
		if deleteOnAbsent {
			c.store.Delete(key)
		}
		c.observe("set_with", key, false, nil)
		return zero, false, nil
	}
	c.store.Set(key, value)
	c.observe("set_with", key, true, nil)
	return value, true, nil
}

func (c *Cache[K, V]) observe(op string, key K, hit bool, err error) {
	if c.observer == nil {
		return
	}
	c.observer.OnOp(op, fmt.Sprint(key), hit, err, string(c.Driver()))
}
