package kan

import (
	"sync"
	"time"
)

// Safe wraps a store with a coarse lock so one instance can be shared across
// goroutines. The bare drivers are not safe for concurrent use, and even a
// read reorders the lru recency list, so every operation takes the same lock.
type Safe struct {
	store      Store
	mutex      sync.Mutex
	stopWorker chan struct{}
	workerDone chan struct{}
}

// NewSafe create a locked store. A positive cleanup interval starts a
// background worker that collects expired entries, when the wrapped store
// supports sweeping.
func NewSafe(store Store, cleanup time.Duration) *Safe {
	safe := &Safe{store: store}
	if _, ok := store.(Sweeper); ok && cleanup > 0 {
		safe.stopWorker = make(chan struct{})
		safe.workerDone = make(chan struct{})
		go safe.backgroundWorker(cleanup)
	}
	return safe
}

// backgroundWorker collects expired entries until Close
func (safe *Safe) backgroundWorker(cleanup time.Duration) {
	defer close(safe.workerDone)

	ticker := time.NewTicker(cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-safe.stopWorker:
			return
		case <-ticker.C:
			safe.EvictExpired()
		}
	}
}

// EvictExpired removes every expired entry from the wrapped store and returns
// the count, 0 when the store does not support sweeping
func (safe *Safe) EvictExpired() int {
	sweeper, ok := safe.store.(Sweeper)
	if !ok {
		return 0
	}

	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	return sweeper.EvictExpired()
}

// Close stops the background worker and releases the wrapped store
func (safe *Safe) Close() error {
	if safe.stopWorker != nil {
		close(safe.stopWorker)
		<-safe.workerDone
	}

	if closer, ok := safe.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// Get looks up a key's value from the store.
func (safe *Safe) Get(key string) (value interface{}, ok bool) {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	return safe.store.Get(key)
}

// Set adds a value to the store.
func (safe *Safe) Set(key string, value interface{}, ttl time.Duration) error {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	return safe.store.Set(key, value, ttl)
}

// Del remove is used to purge a key from the store
func (safe *Safe) Del(key string) error {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	return safe.store.Del(key)
}

// Has check if the key exists
func (safe *Safe) Has(key string) bool {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	return safe.store.Has(key)
}

// Len returns the number of stored entries
func (safe *Safe) Len() int {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	return safe.store.Len()
}

// Keys returns all the cached keys
func (safe *Safe) Keys() []string {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	return safe.store.Keys()
}

// Clear is used to clear the cache
func (safe *Safe) Clear() {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	safe.store.Clear()
}

// GetSet looks up a key's value from the cache. if does not exist add to the
// cache ( the getValue callback runs under the lock )
func (safe *Safe) GetSet(key string, ttl time.Duration, getValue func(key string) (interface{}, error)) (interface{}, error) {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	return safe.store.GetSet(key, ttl, getValue)
}

// GetDel looks up a key's value from the cache, then remove it.
func (safe *Safe) GetDel(key string) (value interface{}, ok bool) {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	return safe.store.GetDel(key)
}

// GetMulti mulit get values
func (safe *Safe) GetMulti(keys []string) map[string]interface{} {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	return safe.store.GetMulti(keys)
}

// SetMulti mulit set values
func (safe *Safe) SetMulti(values map[string]interface{}, ttl time.Duration) {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	safe.store.SetMulti(values, ttl)
}

// DelMulti mulit remove values
func (safe *Safe) DelMulti(keys []string) {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	safe.store.DelMulti(keys)
}

// GetSetMulti mulit get values, if does not exist add to the cache
func (safe *Safe) GetSetMulti(keys []string, ttl time.Duration, getValue func(key string) (interface{}, error)) map[string]interface{} {
	safe.mutex.Lock()
	defer safe.mutex.Unlock()
	return safe.store.GetSetMulti(keys, ttl, getValue)
}
