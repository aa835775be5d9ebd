package store

import swap "github.com/AlphaPrime8/fixed-rate-swap"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = swap.ReadOnlyKVStore
type KVStore = swap.KVStore
type Batch = swap.Batch
type Iterator = swap.Iterator
type CacheableKVStore = swap.CacheableKVStore
type KVCacheWrap = swap.KVCacheWrap

// SetDeleter is the subset of KVStore a batch flushes into.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}
