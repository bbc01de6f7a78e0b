package services

import (
	"sync"
	"time"
)

// CacheEntry represents a cached item with its storage time
type CacheEntry struct {
	Data     interface{}
	StoredAt time.Time
	TTL      time.Duration
}

// IsExpired checks if the cache entry has expired
func (ce *CacheEntry) IsExpired() bool {
	return time.Since(ce.StoredAt) >= ce.TTL
}

// Age returns how long ago the entry was stored
func (ce *CacheEntry) Age() time.Duration {
	return time.Since(ce.StoredAt)
}

// CacheService is a process-wide TTL key-value store. Expiry is lazy: a stale
// entry reads as a miss and is only replaced by the next Set for its key.
// The key space is unbounded; callers accept that distinct keys accumulate
// until CleanupExpired or Clear runs. Safe for concurrent readers and writers
// with last-writer-wins semantics on Set.
type CacheService struct {
	cache      map[string]*CacheEntry
	mutex      sync.RWMutex
	defaultTTL time.Duration
	hits       int64
	misses     int64
}

// NewCacheService creates a cache service with the given default TTL
func NewCacheService(defaultTTL time.Duration) *CacheService {
	return &CacheService{
		cache:      make(map[string]*CacheEntry),
		defaultTTL: defaultTTL,
	}
}

// Get retrieves a fresh value from cache. Stale entries behave as misses.
func (cs *CacheService) Get(key string) (interface{}, bool) {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	entry, exists := cs.cache[key]
	if !exists || entry.IsExpired() {
		cs.misses++
		return nil, false
	}

	cs.hits++
	return entry.Data, true
}

// GetWithAge retrieves a fresh value along with how long it has been cached
func (cs *CacheService) GetWithAge(key string) (interface{}, time.Duration, bool) {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	entry, exists := cs.cache[key]
	if !exists || entry.IsExpired() {
		cs.misses++
		return nil, 0, false
	}

	cs.hits++
	return entry.Data, entry.Age(), true
}

// Set stores a value in cache with the default TTL
func (cs *CacheService) Set(key string, value interface{}) {
	cs.SetWithTTL(key, value, cs.defaultTTL)
}

// SetWithTTL stores a value in cache with a custom TTL
func (cs *CacheService) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	cs.cache[key] = &CacheEntry{
		Data:     value,
		StoredAt: time.Now(),
		TTL:      ttl,
	}
}

// Delete removes a value from cache
func (cs *CacheService) Delete(key string) {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	delete(cs.cache, key)
}

// Clear removes all values from cache
func (cs *CacheService) Clear() {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	cs.cache = make(map[string]*CacheEntry)
}

// Size returns the number of entries held, expired ones included
func (cs *CacheService) Size() int {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	return len(cs.cache)
}

// Stats returns hit/miss counters and the current entry count
func (cs *CacheService) Stats() map[string]interface{} {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	return map[string]interface{}{
		"entries":     len(cs.cache),
		"hits":        cs.hits,
		"misses":      cs.misses,
		"default_ttl": cs.defaultTTL.String(),
	}
}

// CleanupExpired removes expired entries and returns how many were removed.
// Purely a memory-reclamation concern: expired entries already read as
// misses, so running this never changes Get/Set behavior.
func (cs *CacheService) CleanupExpired() int {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	removed := 0
	for key, entry := range cs.cache {
		if entry.IsExpired() {
			delete(cs.cache, key)
			removed++
		}
	}

	return removed
}
