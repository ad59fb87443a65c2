package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemo_HitAndMiss(t *testing.T) {
	m := NewMemo[string](Config{MaxEntries: 4, TTL: time.Minute})

	_, ok := m.Get("k")
	assert.False(t, ok)

	m.Put("k", "v")
	got, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestMemo_TTLExpiry(t *testing.T) {
	m := NewMemo[int](Config{MaxEntries: 4, TTL: 20 * time.Millisecond})

	m.Put("k", 42)
	_, ok := m.Get("k")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	_, ok = m.Get("k")
	assert.False(t, ok, "entry should have expired")
}

func TestMemo_CapacityEviction(t *testing.T) {
	m := NewMemo[int](Config{MaxEntries: 2, TTL: time.Minute})

	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	assert.Equal(t, 2, m.Len())
	_, ok := m.Get("a")
	assert.False(t, ok, "oldest entry should have been displaced")
}

func TestMemo_LaterPutWins(t *testing.T) {
	m := NewMemo[string](Config{MaxEntries: 4, TTL: time.Minute})

	m.Put("k", "first")
	m.Put("k", "second")

	got, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestNewMemo_Defaults(t *testing.T) {
	m := NewMemo[string](Config{})
	m.Put("k", "v")
	got, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}
