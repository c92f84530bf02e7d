package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache_SetGetDelete(t *testing.T) {
	c := New[int64, []string]()

	_, ok := c.Get(1)
	require.False(t, ok)

	c.Set(1, []string{"a"})
	v, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, []string{"a"}, v)

	c.Delete(1)
	_, ok = c.Get(1)
	require.False(t, ok)
	require.Zero(t, c.Len())
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set(i, i*i)
			_, _ = c.Get(i)
		}(i)
	}
	wg.Wait()
	require.Equal(t, 50, c.Len())
}

func TestCache_SetIfGenSkipsAfterEviction(t *testing.T) {
	c := New[int64, string]()

	gen := c.Gen()
	c.Delete(7)
	require.False(t, c.SetIfGen(7, "stale", gen))
	_, ok := c.Get(7)
	require.False(t, ok)

	gen = c.Gen()
	require.True(t, c.SetIfGen(7, "fresh", gen))
	v, ok := c.Get(7)
	require.True(t, ok)
	require.Equal(t, "fresh", v)
}

func TestCache_Clear(t *testing.T) {
	c := New[int, int]()
	c.Set(1, 1)
	c.Set(2, 4)
	gen := c.Gen()

	c.Clear()
	require.Zero(t, c.Len())
	require.False(t, c.SetIfGen(3, 9, gen))
}
