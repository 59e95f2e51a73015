package output

import (
	"fmt"
	"testing"

	"github.com/crewreview/crew/pkg/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCacheHitOnIdenticalContent(t *testing.T) {
	cache := NewReportCache(10)
	snippet := review.NewSnippet("main.go", "x := 1\n")
	cache.Put(snippet, Report{Path: "main.go", Language: "go"})

	cached, ok := cache.Get(review.NewSnippet("main.go", "x := 1\n"))

	require.True(t, ok)
	assert.Equal(t, "main.go", cached.Path)
}

func TestReportCacheMissOnChangedContent(t *testing.T) {
	cache := NewReportCache(10)
	cache.Put(review.NewSnippet("main.go", "x := 1\n"), Report{Path: "main.go"})

	_, ok := cache.Get(review.NewSnippet("main.go", "x := 2\n"))

	assert.False(t, ok)
}

func TestReportCacheMissOnUnknownPath(t *testing.T) {
	cache := NewReportCache(10)

	_, ok := cache.Get(review.NewSnippet("other.go", "x := 1\n"))

	assert.False(t, ok)
}

func TestReportCacheEvictsWhenFull(t *testing.T) {
	cache := NewReportCache(3)
	for i := 0; i < 5; i++ {
		path := fmt.Sprintf("file%d.go", i)
		cache.Put(review.NewSnippet(path, "x := 1\n"), Report{Path: path})
	}

	assert.Equal(t, 3, cache.Len())

	// The most recent entry survives eviction.
	_, ok := cache.Get(review.NewSnippet("file4.go", "x := 1\n"))
	assert.True(t, ok)
}

func TestReportCacheUpdateExistingPathDoesNotEvict(t *testing.T) {
	cache := NewReportCache(2)
	cache.Put(review.NewSnippet("a.go", "v1\n"), Report{Path: "a.go"})
	cache.Put(review.NewSnippet("b.go", "v1\n"), Report{Path: "b.go"})

	// Re-caching a known path replaces its entry in place.
	cache.Put(review.NewSnippet("a.go", "v2\n"), Report{Path: "a.go"})

	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get(review.NewSnippet("b.go", "v1\n"))
	assert.True(t, ok)
}
