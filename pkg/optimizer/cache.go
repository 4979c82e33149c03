package optimizer

import (
	"encoding/json"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/arnavshah/team-optimizer-go/pkg/models"
)

// AnalysisCache memoizes analysis results outside the pure engine. Callers
// hash the input, probe, and store; the engine itself never sees the cache.
type AnalysisCache struct {
	mu         sync.Mutex
	entries    map[string]*models.TeamOptimizationAnalysis
	maxEntries int
}

// NewAnalysisCache creates a cache holding at most maxEntries results. A
// non-positive limit disables bounding.
func NewAnalysisCache(maxEntries int) *AnalysisCache {
	return &AnalysisCache{
		entries:    make(map[string]*models.TeamOptimizationAnalysis),
		maxEntries: maxEntries,
	}
}

// InputKey returns a stable hash of the analysis input. Since the engine is
// deterministic, equal keys imply equal results.
func InputKey(in *models.AnalyzeInput) string {
	payload, err := json.Marshal(in)
	if err != nil {
		// Input structs are plain data; marshal cannot fail on them.
		return ""
	}
	h := fnv.New64a()
	h.Write(payload)
	return strconv.FormatUint(h.Sum64(), 16)
}

// Get returns the cached analysis for key, if present.
func (c *AnalysisCache) Get(key string) (*models.TeamOptimizationAnalysis, bool) {
	if key == "" {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.entries[key]
	return a, ok
}

// Put stores an analysis under key. When the bound is hit the whole cache is
// reset; rosters change rarely enough that recomputing is cheaper than
// tracking recency.
func (c *AnalysisCache) Put(key string, a *models.TeamOptimizationAnalysis) {
	if key == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.entries = make(map[string]*models.TeamOptimizationAnalysis)
	}
	c.entries[key] = a
}

// Len reports the number of cached results.
func (c *AnalysisCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
