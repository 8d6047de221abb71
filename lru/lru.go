package lru

import (
	"time"

	"github.com/yaoapp/kun/log"
)

// New create a new cache bounded to capacity entries
func New(capacity int, options ...Option) (*Cache, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	cache := &Cache{
		capacity: capacity,
		entries:  make(map[string]*entry, capacity),
		list:     newList(capacity),
		clock:    systemClock{},
	}
	for _, option := range options {
		option(cache)
	}
	return cache, nil
}

// Get looks up a key's value from the cache and marks it most recently
// used. An expired entry is removed during the call and reported as a miss.
func (cache *Cache) Get(key string) (value interface{}, ok bool) {
	ent, has := cache.entries[key]
	if !has {
		return nil, false
	}
	if !cache.clock.Now().Before(ent.expiresAt) {
		cache.drop(key, ent)
		return nil, false
	}
	cache.list.moveToFront(ent.node)
	return ent.value, true
}

// Set adds a value to the cache, live for ttl from now. A zero ttl stores
// the entry already stale, so every later Get reports a miss. A negative
// ttl returns ErrInvalidTTL and leaves the cache untouched. When a new key
// would exceed the capacity, the least recently used entry is removed first.
func (cache *Cache) Set(key string, value interface{}, ttl time.Duration) error {
	if ttl < 0 {
		return ErrInvalidTTL
	}

	expiresAt := cache.clock.Now().Add(ttl)
	if ent, has := cache.entries[key]; has {
		ent.value = value
		ent.expiresAt = expiresAt
		cache.list.moveToFront(ent.node)
		return nil
	}

	if len(cache.entries) >= cache.capacity {
		cache.evictTail()
	}
	cache.entries[key] = &entry{value: value, expiresAt: expiresAt, node: cache.list.pushFront(key)}
	return nil
}

// Del remove is used to purge a key from the cache
func (cache *Cache) Del(key string) error {
	if ent, has := cache.entries[key]; has {
		cache.drop(key, ent)
	}
	return nil
}

// Has check if the key exists ( without updating recency )
func (cache *Cache) Has(key string) bool {
	_, has := cache.Peek(key)
	return has
}

// Peek looks up a key's value without updating its recency. An expired
// entry reports a miss but stays in place until a Get, Set or sweep
// collects it.
func (cache *Cache) Peek(key string) (value interface{}, ok bool) {
	ent, has := cache.entries[key]
	if !has || !cache.clock.Now().Before(ent.expiresAt) {
		return nil, false
	}
	return ent.value, true
}

// Len returns the number of cached entries. Expired entries the lazy
// cleanup has not collected yet are still counted, so this is an upper
// bound on the number of live entries.
func (cache *Cache) Len() int {
	return len(cache.entries)
}

// Capacity returns the bound set at construction
func (cache *Cache) Capacity() int {
	return cache.capacity
}

// Keys returns all the cached keys, from the least to the most recently used
func (cache *Cache) Keys() []string {
	return cache.list.keys()
}

// Clear is used to clear the cache
func (cache *Cache) Clear() {
	cache.entries = make(map[string]*entry, cache.capacity)
	cache.list.reset()
}

// EvictExpired removes every entry whose ttl has passed and returns the
// number removed. The sweep is O(n) and reads the clock once, it exists to
// bound the memory held by keys nobody touches anymore.
func (cache *Cache) EvictExpired() int {
	now := cache.clock.Now()
	removed := 0
	for key, ent := range cache.entries {
		if !now.Before(ent.expiresAt) {
			cache.drop(key, ent)
			removed++
		}
	}
	return removed
}

// GetSet looks up a key's value from the cache. if does not exist add to the cache
func (cache *Cache) GetSet(key string, ttl time.Duration, getValue func(key string) (interface{}, error)) (interface{}, error) {
	value, ok := cache.Get(key)
	if !ok {
		var err error
		value, err = getValue(key)
		if err != nil {
			return nil, err
		}
		if err := cache.Set(key, value, ttl); err != nil {
			return nil, err
		}
	}
	return value, nil
}

// GetDel looks up a key's value from the cache, then remove it.
func (cache *Cache) GetDel(key string) (value interface{}, ok bool) {
	value, ok = cache.Get(key)
	if !ok {
		return nil, false
	}
	cache.Del(key)
	return value, true
}

// GetMulti mulit get values
func (cache *Cache) GetMulti(keys []string) map[string]interface{} {
	values := map[string]interface{}{}
	for _, key := range keys {
		value, _ := cache.Get(key)
		values[key] = value
	}
	return values
}

// SetMulti mulit set values
func (cache *Cache) SetMulti(values map[string]interface{}, ttl time.Duration) {
	for key, value := range values {
		cache.Set(key, value, ttl)
	}
}

// DelMulti mulit remove values
func (cache *Cache) DelMulti(keys []string) {
	for _, key := range keys {
		cache.Del(key)
	}
}

// GetSetMulti mulit get values, if does not exist add to the cache
func (cache *Cache) GetSetMulti(keys []string, ttl time.Duration, getValue func(key string) (interface{}, error)) map[string]interface{} {
	values := map[string]interface{}{}
	for _, key := range keys {
		value, err := cache.GetSet(key, ttl, getValue)
		if err != nil {
			log.Error("GetSetMulti Set %s: %s", key, err.Error())
		}
		values[key] = value
	}
	return values
}

// drop removes an entry from the map and the recency order
func (cache *Cache) drop(key string, ent *entry) {
	cache.list.remove(ent.node)
	delete(cache.entries, key)
}

// evictTail removes the least recently used entry to free one slot. The
// tail is the victim either way, so an expired tail goes before any live
// entry without scanning the order.
func (cache *Cache) evictTail() {
	key, ok := cache.list.tailKey()
	if !ok {
		return
	}
	cache.drop(key, cache.entries[key])
}
