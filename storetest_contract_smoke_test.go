package model_test

import (
	"testing"
	"time"

	"github.com/modelkit/model"
	"github.com/modelkit/model/storetest"
)

func stringSamples() storetest.Samples[string, string] {
	return storetest.Samples[string, string]{
		Keys:   []string{"alpha", "beta", "gamma"},
		Values: []string{"one", "two"},
	}
}

func TestStoretestRunStoreContract_MapStore(t *testing.T) {
	store := model.NewMapStore[string, string]()
	storetest.RunStoreContract(t, store, stringSamples(), storetest.Options{})
}

func TestStoretestRunStoreContract_ExpiringStore(t *testing.T) {
	store := model.NewExpiringStore[string](200*time.Millisecond, time.Minute)
	storetest.RunStoreContract(t, store, stringSamples(), storetest.Options{
		Expiring: true,
		TTLWait:  2 * time.Second,
	})
}

func TestStoretestRunStoreContract_NullStore(t *testing.T) {
	store := model.NewNullStore[string, string]()
	storetest.RunStoreContract(t, store, stringSamples(), storetest.Options{NullSemantics: true})
}

func TestStoretestRunStoreContract_IntKeys(t *testing.T) {
	store := model.NewMapStore[int, []byte]()
	storetest.RunStoreContract(t, store, storetest.Samples[int, []byte]{
		Keys:   []int{1, 2, 3},
		Values: [][]byte{[]byte("one"), []byte("two")},
	}, storetest.Options{})
}
