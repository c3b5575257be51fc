package memory

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedResult is one ranked knowledge-base hit stored in the query cache.
type CachedResult struct {
	Title   string
	Snippet string
	Score   float64
}

// QueryCache keeps recent knowledge-base query results in memory so that
// repeated questions inside a conversation do not re-score the index.
type QueryCache struct {
	cache *cache.Cache
}

func NewQueryCache() *QueryCache {
	// 5 minute TTL, purge every minute; the article set is static so
	// staleness only matters across reseeds.
	c := cache.New(5*time.Minute, 1*time.Minute)
	return &QueryCache{
		cache: c,
	}
}

func (q *QueryCache) key(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (q *QueryCache) Save(query string, results []CachedResult) {
	q.cache.Set(q.key(query), results, cache.DefaultExpiration)
}

func (q *QueryCache) Get(query string) ([]CachedResult, bool) {
	if x, found := q.cache.Get(q.key(query)); found {
		return x.([]CachedResult), true
	}
	return nil, false
}

func (q *QueryCache) Flush() {
	q.cache.Flush()
}
