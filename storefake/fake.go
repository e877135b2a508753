// Package storefake provides a deterministic counting store for tests.
package storefake

import (
	"fmt"
	"sync"
	"testing"

	"github.com/modelkit/model"
)

// Op identifies a store operation for assertions.
type Op string

const (
	OpHas    Op = "has"
	OpGet    Op = "get"
	OpSet    Op = "set"
	OpDelete Op = "delete"
	OpClear  Op = "clear"
	OpLen    Op = "len"
	OpRange  Op = "range"
)

// Fake exposes a deterministic in-memory store plus assertion helpers for
// tests. It wraps a map store so no external setup is needed.
type Fake[K comparable, V any] struct {
	store  *countingStore[K, V]
	counts map[Op]map[string]int
	mu     sync.Mutex
}

// New creates a Fake wrapping a fresh map store.
func New[K comparable, V any]() *Fake[K, V] {
	f := &Fake[K, V]{counts: make(map[Op]map[string]int)}
	f.store = &countingStore[K, V]{inner: model.NewMapStore[K, V](), onCount: f.record}
	return f
}

// Store returns the counted store to inject into code under test.
func (f *Fake[K, V]) Store() model.Store[K, V] { return f.store }

// Reset clears recorded counts. Store contents are untouched.
func (f *Fake[K, V]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = make(map[Op]map[string]int)
}

// AssertCalled verifies key was touched by op the expected number of times.
func (f *Fake[K, V]) AssertCalled(t *testing.T, op Op, key K, times int) {
	t.Helper()
	if got := f.Count(op, key); got != times {
		t.Fatalf("expected %s %v called %d times, got %d", op, key, times, got)
	}
}

// AssertNotCalled ensures key was never touched by op.
func (f *Fake[K, V]) AssertNotCalled(t *testing.T, op Op, key K) {
	t.Helper()
	if got := f.Count(op, key); got != 0 {
		t.Fatalf("expected %s %v not called, got %d", op, key, got)
	}
}

// AssertTotal ensures the total call count for an op matches times.
func (f *Fake[K, V]) AssertTotal(t *testing.T, op Op, times int) {
	t.Helper()
	if got := f.Total(op); got != times {
		t.Fatalf("expected %s total=%d, got %d", op, times, got)
	}
}

// Count returns calls for op+key.
func (f *Fake[K, V]) Count(op Op, key K) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[op] == nil {
		return 0
	}
	return f.counts[op][fmt.Sprint(key)]
}

// Total returns total calls for an op across keys.
func (f *Fake[K, V]) Total(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int
	for _, v := range f.counts[op] {
		sum += v
	}
	return sum
}

func (f *Fake[K, V]) record(op Op, key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[op] == nil {
		f.counts[op] = make(map[string]int)
	}
	f.counts[op][key]++
}

// countingStore wraps a Store to record calls.
type countingStore[K comparable, V any] struct {
	inner   model.Store[K, V]
	onCount func(Op, string)
}

func (s *countingStore[K, V]) Driver() model.Driver { return s.inner.Driver() }

func (s *countingStore[K, V]) Has(key K) bool {
	s.bump(OpHas, fmt.Sprint(key))
	return s.inner.Has(key)
}

func (s *countingStore[K, V]) Get(key K) (V, bool) {
	s.bump(OpGet, fmt.Sprint(key))
	return s.inner.Get(key)
}

func (s *countingStore[K, V]) Set(key K, value V) {
	s.bump(OpSet, fmt.Sprint(key))
	s.inner.Set(key, value)
}

func (s *countingStore[K, V]) Delete(key K) bool {
	s.bump(OpDelete, fmt.Sprint(key))
	return s.inner.Delete(key)
}

func (s *countingStore[K, V]) Clear() {
	s.bump(OpClear, "")
	s.inner.Clear()
}

func (s *countingStore[K, V]) Len() int {
	s.bump(OpLen, "")
	return s.inner.Len()
}

func (s *countingStore[K, V]) Range(fn func(key K, value V) bool) {
	s.bump(OpRange, "")
	s.inner.Range(fn)
}

func (s *countingStore[K, V]) bump(op Op, key string) {
	if s.onCount != nil {
		s.onCount(op, key)
	}
}
