package model

type nullStore[K comparable, V any] struct{}

func newNullStore[K comparable, V any]() *nullStore[K, V] { return &nullStore[K, V]{} }

func (s *nullStore[K, V]) Driver() Driver { return DriverNull }

func (s *nullStore[K, V]) Has(K) bool {
	return false
}

func (s *nullStore[K, V]) Get(K) (V, bool) {
	var zero V
	return zero, false
}

func (s *nullStore[K, V]) Set(K, V) {}

func (s *nullStore[K, V]) Delete(K) bool { return false }

func (s *nullStore[K, V]) Clear() {}

func (s *nullStore[K, V]) Len() int { return 0 }

func (s *nullStore[K, V]) Range(func(K, V) bool) {}
