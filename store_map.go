package model

type mapStore[K comparable, V any] struct {
	items map[K]V
}

func newMapStore[K comparable, V any]() *mapStore[K, V] {
	return &mapStore[K, V]{items: make(map[K]V)}
}

func (s *mapStore[K, V]) Driver() Driver {
	return DriverMap
}

func (s *mapStore[K, V]) Has(key K) bool {
	_, ok := s.items[key]
	return ok
}

func (s *mapStore[K, V]) Get(key K) (V, bool) {
	value, ok := s.items[key]
	return value, ok
}

func (s *mapStore[K, V]) Set(key K, value V) {
	s.items[key] = value
}

func (s *mapStore[K, V]) Delete(key K) bool {
	if _, ok := s.items[key]; !ok {
		return false
	}
	delete(s.items, key)
	return true
}

func (s *mapStore[K, V]) Clear() {
	s.items = make(map[K]V)
}

func (s *mapStore[K, V]) Len() int {
	return len(s.items)
}

// Range visits entries in map order, which is unspecified.
func (s *mapStore[K, V]) Range(fn func(key K, value V) bool) {
	for key, value := range s.items {
		if !fn(key, value) {
			return
		}
	}
}
