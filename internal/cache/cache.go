package cache

import (
	"log/slog"
	"slices"
	"strings"
	"sync"

	"pos-versions-dashboard/internal/report"
)

// Key identifies one filter combination. Device ids are stored sorted so the
// selection order does not matter.
type Key struct {
	Version   string
	DeviceIDs string
	Pinpad    bool
	POSModel  string
}

func NewKey(f report.Filter) Key {
	ids := slices.Clone(f.DeviceIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	return Key{
		Version:   f.Version,
		DeviceIDs: strings.Join(ids, "\x1f"),
		Pinpad:    f.ShowPinpadRanking,
		POSModel:  f.POSModel,
	}
}

type Cache interface {
	Get(key Key) (report.View, bool)
	Set(generation uint64, key Key, view report.View)
	Generation() uint64
	Invalidate()
	Len() int
	Dump()
}

type ViewCache struct {
	mu         sync.RWMutex
	generation uint64
	store      map[Key]report.View
}

func New() *ViewCache {
	return &ViewCache{
		store: make(map[Key]report.View),
	}
}

func (c *ViewCache) Get(key Key) (report.View, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	view, exists := c.store[key]
	return view, exists
}

// Set drops views computed against an older dataset generation.
func (c *ViewCache) Set(generation uint64, key Key, view report.View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return
	}
	c.store[key] = view
}

func (c *ViewCache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

func (c *ViewCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	clear(c.store)
}

func (c *ViewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *ViewCache) Dump() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for key, view := range c.store {
		slog.Info("Cache Dump", "generation", c.generation, "key", key, "mode", view.Mode)
	}
}
