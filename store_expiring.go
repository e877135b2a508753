package model

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type expiringStore[V any] struct {
	cache *gocache.Cache
}

func newExpiringStore[V any](defaultTTL, cleanupInterval time.Duration) *expiringStore[V] {
	if defaultTTL <= 0 {
		defaultTTL = defaultStoreTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}
	return &expiringStore[V]{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (s *expiringStore[V]) Driver() Driver {
	return DriverExpiring
}

func (s *expiringStore[V]) Has(key string) bool {
	_, ok := s.cache.Get(key)
	return ok
}

func (s *expiringStore[V]) Get(key string) (V, bool) {
	var zero V
	item, ok := s.cache.Get(key)
	if !ok {
		return zero, false
	}
	value, ok := item.(V)
	if !ok {
		return zero, false
	}
	return value, true
}

func (s *expiringStore[V]) Set(key string, value V) {
	s.cache.Set(key, value, gocache.DefaultExpiration)
}

func (s *expiringStore[V]) Delete(key string) bool {
	if _, ok := s.cache.Get(key); !ok {
		return false
	}
	s.cache.Delete(key)
	return true
}

func (s *expiringStore[V]) Clear() {
	s.cache.Flush()
}

func (s *expiringStore[V]) Len() int {
	return len(s.cache.Items())
}

// Range visits unexpired entries only; expired items still awaiting a
// cleanup sweep are skipped.
func (s *expiringStore[V]) Range(fn func(key string, value V) bool) {
	for key, item := range s.cache.Items() {
		value, ok := item.Object.(V)
		if !ok {
			continue
		}
		if !fn(key, value) {
			return
		}
	}
}
