package service

import (
	"sync"
	"time"

	"AmHughesAbsalom/SPORTSHUB_TRACKER.git/models"

	cache "github.com/patrickmn/go-cache"
)

// StandingsCache keeps the last computed table of each sport for a fixed TTL.
// Tables are copied on the way in and out so callers cannot alter a cached one.
//
// Every Invalidate bumps the generation of the sport. A table computed from
// reads taken before an invalidation is never stored.
type StandingsCache struct {
	cache *cache.Cache
	ttl   time.Duration

	mu          sync.Mutex
	generations map[models.Sport]uint64
}

func NewStandingsCache(ttl time.Duration) *StandingsCache {
	return &StandingsCache{
		cache:       cache.New(ttl, ttl*2),
		ttl:         ttl,
		generations: make(map[models.Sport]uint64),
	}
}

// Generation is the current invalidation count of sport. Read it before
// loading the data a table is computed from and hand it to SetIfCurrent.
func (c *StandingsCache) Generation(sport models.Sport) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[sport]
}

func (c *StandingsCache) Get(sport models.Sport) ([]models.StandingsModel, bool) {
	cached, found := c.cache.Get(string(sport))
	if !found {
		return nil, false
	}
	table, ok := cached.([]models.StandingsModel)
	if !ok {
		return nil, false
	}
	return cloneTable(table), true
}

func (c *StandingsCache) Set(sport models.Sport, table []models.StandingsModel) {
	c.cache.Set(string(sport), cloneTable(table), c.ttl)
}

// SetIfCurrent stores table only when sport has not been invalidated since
// generation was read. It reports whether the table was stored.
func (c *StandingsCache) SetIfCurrent(sport models.Sport, generation uint64, table []models.StandingsModel) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[sport] != generation {
		return false
	}
	c.cache.Set(string(sport), cloneTable(table), c.ttl)
	return true
}

func (c *StandingsCache) Invalidate(sport models.Sport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[sport]++
	c.cache.Delete(string(sport))
}

func cloneTable(table []models.StandingsModel) []models.StandingsModel {
	out := make([]models.StandingsModel, len(table))
	for i, row := range table {
		row.Drawn = cloneInt(row.Drawn)
		row.GoalsFor = cloneInt(row.GoalsFor)
		row.GoalsAgainst = cloneInt(row.GoalsAgainst)
		row.GoalDifference = cloneInt(row.GoalDifference)
		out[i] = row
	}
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
