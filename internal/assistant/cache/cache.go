package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultMaxEntries = 256
	DefaultTTL        = time.Hour
)

// Config bounds a branch memo: MaxEntries caps memory, TTL caps staleness.
type Config struct {
	MaxEntries int
	TTL        time.Duration
}

// Memo is a time-boxed, size-bounded result cache keyed by a deterministic
// fingerprint of branch inputs. Entries past TTL are never returned; once
// capacity is exceeded the least recently used entry is displaced. Safe for
// concurrent Get/Put. There is no single-flight de-duplication: two
// concurrent misses on the same key both compute, and the later Put wins.
type Memo[V any] struct {
	entries *lru.LRU[string, V]
}

func NewMemo[V any](cfg Config) *Memo[V] {
	size := cfg.MaxEntries
	if size <= 0 {
		size = DefaultMaxEntries
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memo[V]{entries: lru.NewLRU[string, V](size, nil, ttl)}
}

func (m *Memo[V]) Get(key string) (V, bool) {
	return m.entries.Get(key)
}

func (m *Memo[V]) Put(key string, value V) {
	m.entries.Add(key, value)
}

func (m *Memo[V]) Len() int {
	return m.entries.Len()
}
