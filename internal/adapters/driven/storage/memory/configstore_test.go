package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("catalog.path", "movies.csv"))
	require.NoError(t, store.Set("catalog.path", "films.parquet"))

	val, ok := store.Get("catalog.path")
	assert.True(t, ok)
	assert.Equal(t, "films.parquet", val)

	_, ok = store.Get("nonexistent")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("s", "text")
	_ = store.Set("i", 7)
	_ = store.Set("i64", int64(8))
	_ = store.Set("f", 2.5)
	_ = store.Set("b", true)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("s"), "text"},
		{"string wrong type", store.GetString("i"), ""},
		{"string missing", store.GetString("missing"), ""},
		{"int", store.GetInt("i"), 7},
		{"int from int64", store.GetInt("i64"), 8},
		{"int from float", store.GetInt("f"), 2},
		{"int wrong type", store.GetInt("s"), 0},
		{"float", store.GetFloat("f"), 2.5},
		{"float from int", store.GetFloat("i"), 7.0},
		{"float from int64", store.GetFloat("i64"), 8.0},
		{"float wrong type", store.GetFloat("b"), 0.0},
		{"bool", store.GetBool("b"), true},
		{"bool wrong type", store.GetBool("s"), false},
		{"bool missing", store.GetBool("missing"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_NoOps(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("recommend.count", 5)

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, 5, store.GetInt("recommend.count"))
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "key-" + string(rune('A'+id%26))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetFloat(key)
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("key-A")
	assert.True(t, ok)
}

func TestConfigStore_Seed(t *testing.T) {
	seed := map[string]any{"recommend.count": 7, "posters.enabled": false}
	store := NewConfigStore(seed)

	assert.Equal(t, 7, store.GetInt("recommend.count"))
	assert.False(t, store.GetBool("posters.enabled"))

	require.NoError(t, store.Set("recommend.count", 9))
	assert.Equal(t, 7, seed["recommend.count"], "seed map must not be shared")
}

func TestConfigStore_Unset(t *testing.T) {
	store := NewConfigStore(map[string]any{"posters.api_key": "secret"})

	require.NoError(t, store.Unset("posters.api_key"))
	_, ok := store.Get("posters.api_key")
	assert.False(t, ok)

	assert.NoError(t, store.Unset("posters.api_key"))
}
