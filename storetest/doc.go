// Package storetest provides reusable contract tests for model.Store
// implementations.
//
// Custom store implementations can use this package from their own tests
// without importing root test helpers.
//
// Example pattern (custom store test):
//
//	func TestRingStoreContract(t *testing.T) {
//		store := newRingStore[string, int](64)
//		storetest.RunStoreContract(t, store, storetest.Samples[string, int]{
//			Keys:   []string{"a", "b", "c"},
//			Values: []int{1, 2},
//		}, storetest.Options{})
//	}
//
// Expiring backends set Options.Expiring and size TTLWait to their expiry
// semantics:
//
//	store := model.NewExpiringStore[int](50*time.Millisecond, time.Minute)
//	storetest.RunStoreContract(t, store, samples, storetest.Options{
//		Expiring: true,
//		TTLWait:  time.Second,
//	})
package storetest
