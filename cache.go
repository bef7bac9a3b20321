package aria

import (
	"fmt"
	"sync"
)

// DefaultCacheCapacity bounds the number of schedules kept by DefaultCache.
const DefaultCacheCapacity = 1024

// DefaultCache backs the package-level Encrypt and Decrypt helpers.
var DefaultCache = NewScheduleCache(DefaultCacheCapacity)

// ScheduleCache memoizes key schedules by raw key bytes. Entries are keyed by
// the full key value, so a different key never observes another key's
// schedule. Safe for concurrent use.
type ScheduleCache struct {
	mu       sync.RWMutex
	entries  map[[KeySize]byte]*Schedule
	capacity int
}

// NewScheduleCache returns a cache holding at most capacity schedules.
// A capacity <= 0 means unbounded.
func NewScheduleCache(capacity int) *ScheduleCache {
	return &ScheduleCache{
		entries:  make(map[[KeySize]byte]*Schedule),
		capacity: capacity,
	}
}

// Get returns the schedule for key, deriving and storing it on a miss.
func (c *ScheduleCache) Get(key []byte) (*Schedule, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}
	var k [KeySize]byte
	copy(k[:], key)

	c.mu.RLock()
	s, ok := c.entries[k]
	c.mu.RUnlock()
	if ok {
		return s, nil
	}

	// Derive outside the lock; two goroutines racing on the same key compute
	// identical schedules, and the first one stored wins.
	s = new(Schedule)
	s.expand(loadBlock(k[:]))

	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.entries[k]; ok {
		return cur, nil
	}
	if c.capacity > 0 && len(c.entries) >= c.capacity {
		clear(c.entries)
	}
	c.entries[k] = s
	return s, nil
}

// Cipher returns a Cipher backed by the cached schedule for key.
func (c *ScheduleCache) Cipher(key []byte) (*Cipher, error) {
	s, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{sched: s}, nil
}

// Invalidate drops the schedule for key, if any.
func (c *ScheduleCache) Invalidate(key []byte) {
	if len(key) != KeySize {
		return
	}
	var k [KeySize]byte
	copy(k[:], key)
	c.mu.Lock()
	delete(c.entries, k)
	c.mu.Unlock()
}

// Len reports the number of cached schedules.
func (c *ScheduleCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops every cached schedule.
func (c *ScheduleCache) Reset() {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
}
