package model

import "time"

// NewStore returns a concrete string-keyed store for the requested driver.
// @group Constructors
//
// Example: select driver explicitly
//
//	store := model.NewStore[int](model.StoreConfig{
//		Driver: model.DriverMap,
//	})
//	fmt.Println(store.Driver()) // map
func NewStore[V any](cfg StoreConfig) Store[string, V] {
	cfg = cfg.withDefaults()
	switch cfg.Driver {
	case DriverNull:
		return newNullStore[string, V]()
	case DriverExpiring:
		return newExpiringStore[V](cfg.DefaultTTL, cfg.CleanupInterval)
	default:
		return newMapStore[string, V]()
	}
}

// NewStoreWith builds a store using a driver and a set of functional options.
// @group Constructors
//
// Example: expiring store (options)
//
//	store := model.NewStoreWith[string](model.DriverExpiring,
//		model.WithDefaultTTL(time.Minute),
//		model.WithCleanupInterval(5*time.Minute),
//	)
//	fmt.Println(store.Driver()) // expiring
func NewStoreWith[V any](driver Driver, opts ...StoreOption) Store[string, V] {
	cfg := StoreConfig{Driver: driver}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return NewStore[V](cfg)
}

// NewMapStore is a convenience for a plain map-backed store with arbitrary
// comparable keys.
// @group Constructors
//
// Example: map helper
//
//	store := model.NewMapStore[int, string]()
//	store.Set(1, "one")
//	fmt.Println(store.Len()) // 1
func NewMapStore[K comparable, V any]() Store[K, V] {
	return newMapStore[K, V]()
}

// NewExpiringStore is a convenience for a TTL-bounded store. Entries expire
// defaultTTL after each write; cleanupInterval controls eviction sweeps.
// @group Constructors
//
// Example: expiring helper
//
//	store := model.NewExpiringStore[string](time.Minute, 5*time.Minute)
//	fmt.Println(store.Driver()) // expiring
func NewExpiringStore[V any](defaultTTL, cleanupInterval time.Duration) Store[string, V] {
	return newExpiringStore[V](defaultTTL, cleanupInterval)
}

// NewNullStore is a convenience for an always-miss store: writes are
// dropped, reads miss, deletes report false.
// @group Constructors
func NewNullStore[K comparable, V any]() Store[K, V] {
	return newNullStore[K, V]()
}
