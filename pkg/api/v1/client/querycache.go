package client

import (
	"sync"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// QueryCache decides whether a previously fetched page of games is still
// valid for a requested filter set, so unchanged filters skip the network.
// It never errors; any uncertainty degrades to "fetch".
type QueryCache struct {
	mu          sync.Mutex
	lastApplied *models.GameQueryParameters
	fresh       bool
	hasError    bool
}

// NewQueryCache returns an empty cache; the first ShouldFetch always fetches
func NewQueryCache() *QueryCache {
	return &QueryCache{}
}

// ShouldFetch reports whether a fetch is required for the requested filters.
// It returns false only when the held page is fresh, the last fetch did not
// error, and the requested filters are equivalent to the last applied ones.
func (c *QueryCache) ShouldFetch(requested *models.GameQueryParameters) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hasError || !c.fresh {
		return true
	}
	return !requested.Equivalent(c.lastApplied)
}

// MarkFresh records the filters that produced the currently held page
func (c *QueryCache) MarkFresh(applied *models.GameQueryParameters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastApplied = applied.Clone()
	c.fresh = true
	c.hasError = false
}

// Invalidate marks the held page stale. Called after any mutation
// (create/update/delete/reorder), since the cached page may no longer match.
func (c *QueryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fresh = false
}

// MarkError records a failed fetch so the next ShouldFetch retries
func (c *QueryCache) MarkError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasError = true
}
