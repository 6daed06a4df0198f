//nolint
package store

import "quorumgate"

// Move references for all storage types into this package
// for shorter names everywhere

type KVStore = quorumgate.KVStore
type ReadOnlyKVStore = quorumgate.ReadOnlyKVStore
type SetDeleter = quorumgate.SetDeleter
type Batch = quorumgate.Batch
type Iterator = quorumgate.Iterator
type CacheableKVStore = quorumgate.CacheableKVStore
type KVCacheWrap = quorumgate.KVCacheWrap
type CommitKVStore = quorumgate.CommitKVStore
type CommitID = quorumgate.CommitID

// Model groups a key with its value, for iterators that preload data.
type Model struct {
	Key   []byte
	Value []byte
}
