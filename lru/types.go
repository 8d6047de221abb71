package lru

import (
	"errors"
	"time"
)

// ErrInvalidCapacity is returned by New when the capacity is not a positive integer
var ErrInvalidCapacity = errors.New("the capacity must be a positive integer")

// ErrInvalidTTL is returned by Set when the ttl is negative
var ErrInvalidTTL = errors.New("the ttl must not be negative")

// Cache a bounded key-value cache. Entries are evicted least-recently-used
// first once the capacity is reached, and every entry carries its own TTL.
// Expiration is lazy: an expired entry is dropped when a read or write next
// touches it, or by EvictExpired. The cache is not safe for concurrent use,
// wrap it (see kan.NewSafe) when sharing an instance across goroutines.
type Cache struct {
	capacity int
	entries  map[string]*entry
	list     *list
	clock    Clock
}

// entry the record held for one key
type entry struct {
	value     interface{}
	expiresAt time.Time // the entry is live while now < expiresAt
	node      int       // arena index of the recency node
}

// Option the functional option for New
type Option func(*Cache)

// WithClock replaces the clock the cache reads time from
func WithClock(clock Clock) Option {
	return func(cache *Cache) {
		cache.clock = clock
	}
}
