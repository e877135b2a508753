package storetest

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/modelkit/model"
)

// Samples supplies the distinct keys and values a generic contract run
// works with. At least three keys and two values are required; all keys
// must be distinct and the first two values must differ.
type Samples[K comparable, V any] struct {
	Keys   []K
	Values []V
}

// Options configures shared store contract checks.
type Options struct {
	// NullSemantics enables relaxed expectations for always-miss stores.
	NullSemantics bool
	// Expiring enables the TTL expiry check. The store must be built with
	// a TTL shorter than TTLWait.
	Expiring bool
	// TTLWait is how long the harness waits for expiry to occur.
	TTLWait time.Duration
}

// RunStoreContract runs a backend-agnostic store contract suite. The suite
// owns the store's contents: it clears the store up front and leaves it
// empty on success.
func RunStoreContract[K comparable, V any](t *testing.T, store model.Store[K, V], samples Samples[K, V], opts Options) {
	t.Helper()

	if len(samples.Keys) < 3 || len(samples.Values) < 2 {
		t.Fatalf("contract needs at least 3 keys and 2 values, got %d/%d", len(samples.Keys), len(samples.Values))
	}
	k0, k1, k2 := samples.Keys[0], samples.Keys[1], samples.Keys[2]
	v0, v1 := samples.Values[0], samples.Values[1]
	if reflect.DeepEqual(v0, v1) {
		t.Fatalf("contract needs two distinct values")
	}

	store.Clear()
	if n := store.Len(); n != 0 {
		t.Fatalf("expected empty store after clear, got len=%d", n)
	}

	// Set/Get round-trip.
	store.Set(k0, v0)
	got, ok := store.Get(k0)
	if opts.NullSemantics {
		if ok {
			t.Fatalf("expected miss for null semantics")
		}
		if store.Has(k0) {
			t.Fatalf("expected null-like has to report false")
		}
		if store.Delete(k0) {
			t.Fatalf("expected null-like delete to report false")
		}
		if n := store.Len(); n != 0 {
			t.Fatalf("expected null-like len=0, got %d", n)
		}
		visits := 0
		store.Range(func(K, V) bool { visits++; return true })
		if visits != 0 {
			t.Fatalf("expected null-like range to visit nothing, visited %d", visits)
		}
		return
	}
	if !ok || !reflect.DeepEqual(got, v0) {
		t.Fatalf("unexpected get result: ok=%v value=%v", ok, got)
	}
	if !store.Has(k0) {
		t.Fatalf("expected has after set")
	}
	if store.Has(k2) {
		t.Fatalf("expected miss for unset key")
	}

	// Overwrite.
	store.Set(k0, v1)
	got, ok = store.Get(k0)
	if !ok || !reflect.DeepEqual(got, v1) {
		t.Fatalf("expected overwrite to win: ok=%v value=%v", ok, got)
	}

	// Zero values are present, not absent.
	var zero V
	store.Set(k2, zero)
	if !store.Has(k2) {
		t.Fatalf("expected zero value entry to be present")
	}
	if _, ok := store.Get(k2); !ok {
		t.Fatalf("expected zero value get to report ok")
	}

	// Delete reports prior existence.
	if !store.Delete(k2) {
		t.Fatalf("expected delete of existing key to report true")
	}
	if store.Delete(k2) {
		t.Fatalf("expected repeated delete to report false")
	}
	if _, ok := store.Get(k2); ok {
		t.Fatalf("expected miss after delete")
	}

	// Len accounting and range visits.
	store.Set(k1, v0)
	if n := store.Len(); n != 2 {
		t.Fatalf("expected len=2, got %d", n)
	}
	seen := make(map[K]V)
	store.Range(func(key K, value V) bool {
		seen[key] = value
		return true
	})
	if len(seen) != 2 {
		t.Fatalf("expected range to visit 2 entries, visited %d", len(seen))
	}
	if !reflect.DeepEqual(seen[k0], v1) || !reflect.DeepEqual(seen[k1], v0) {
		t.Fatalf("unexpected range contents: %v", seen)
	}

	// Early stop.
	visits := 0
	store.Range(func(K, V) bool {
		visits++
		return false
	})
	if visits != 1 {
		t.Fatalf("expected range to stop after first visit, visited %d", visits)
	}

	// TTL expiry.
	if opts.Expiring {
		wait := opts.TTLWait
		if wait <= 0 {
			wait = 120 * time.Millisecond
		}
		store.Set(k2, v0)
		if err := waitForMiss(store, k2, wait); err != nil {
			t.Fatalf("expected ttl expiry: %v", err)
		}
	}

	// Clear.
	store.Clear()
	if n := store.Len(); n != 0 {
		t.Fatalf("expected clear to empty store, got len=%d", n)
	}
	if store.Has(k0) {
		t.Fatalf("expected miss after clear")
	}
}

func waitForMiss[K comparable, V any](store model.Store[K, V], key K, wait time.Duration) error {
	deadline := time.Now().Add(wait)
	for time.Now().Before(deadline) {
		if !store.Has(key) {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	if store.Has(key) {
		return fmt.Errorf("key %v still present after %s", key, wait)
	}
	return nil
}
