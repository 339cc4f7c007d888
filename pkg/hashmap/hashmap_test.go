package hashmap_test

import (
	"fmt"
	"testing"

	"github.com/crackvault/crackvault/pkg/hashmap"
	"github.com/stretchr/testify/require"
)

func TestMap_PutGetDelete(t *testing.T) {
	m := hashmap.New[string, int]()

	require.True(t, m.Put("alpha", 1))
	require.True(t, m.Put("beta", 2))
	require.False(t, m.Put("alpha", 10), "overwrite must not report a new key")
	require.Equal(t, 2, m.Len())

	v, ok := m.Get("alpha")
	require.True(t, ok)
	require.Equal(t, 10, v)

	_, ok = m.Get("gamma")
	require.False(t, ok)

	v, ok = m.Delete("alpha")
	require.True(t, ok)
	require.Equal(t, 10, v)
	require.Equal(t, 1, m.Len())

	_, ok = m.Get("alpha")
	require.False(t, ok)

	_, ok = m.Delete("alpha")
	require.False(t, ok, "deleting an absent key is a negative result, not an error")
}

func TestMap_LoadFactorNeverExceeded(t *testing.T) {
	m := hashmap.New[string, int]()

	for i := 0; i < 10_000; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i)
		require.LessOrEqual(t, float64(m.Len()), 0.75*float64(m.Cap()))
	}

	// Every entry must survive the resizes.
	for i := 0; i < 10_000; i++ {
		v, ok := m.Get(fmt.Sprintf("key-%d", i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestMap_All(t *testing.T) {
	m := hashmap.New[string, int]()

	want := map[string]int{}
	for i := 0; i < 100; i++ {
		k := fmt.Sprintf("key-%d", i)
		m.Put(k, i)
		want[k] = i
	}

	got := map[string]int{}
	for k, v := range m.All() {
		got[k] = v
	}
	require.Equal(t, want, got)
}

func TestMap_AllStopsEarly(t *testing.T) {
	m := hashmap.New[string, int]()
	for i := 0; i < 100; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i)
	}

	seen := 0
	for range m.All() {
		seen++
		if seen == 10 {
			break
		}
	}
	require.Equal(t, 10, seen)
}

func TestMap_ValueEquality(t *testing.T) {
	type word string

	m := hashmap.New[word, bool]()
	a := word("pass" + "word")
	b := word("password")

	m.Put(a, true)
	require.True(t, m.Contains(b), "keys compare by value, not identity")
}
