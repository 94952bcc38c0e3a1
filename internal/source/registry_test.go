package source

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryOrder(t *testing.T) {
	r := NewDefaultRegistry(NewClient(time.Second))

	assert.Equal(t, []string{
		"google", "bing", "duckduckgo",
		"whitepages", "truepeoplesearch", "fastpeoplesearch", "spokeo", "beenverified",
	}, r.AllNames())
}

func TestRegistryByCategory(t *testing.T) {
	r := NewDefaultRegistry(NewClient(time.Second))

	engines := r.ByCategory(Engine)
	require.Len(t, engines, 3)
	assert.Equal(t, "google", engines[0].Name())

	people := r.ByCategory(People)
	require.Len(t, people, 5)
	assert.Equal(t, "whitepages", people[0].Name())
	assert.Equal(t, "beenverified", people[4].Name())
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("myspace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown adapter")
}

func TestParseCategory(t *testing.T) {
	cat, err := ParseCategory("engine")
	require.NoError(t, err)
	assert.Equal(t, Engine, cat)

	cat, err = ParseCategory("people")
	require.NoError(t, err)
	assert.Equal(t, People, cat)

	_, err = ParseCategory("astral")
	assert.Error(t, err)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "engine", Engine.String())
	assert.Equal(t, "people", People.String())
	assert.Equal(t, "unknown", Category(99).String())
}
