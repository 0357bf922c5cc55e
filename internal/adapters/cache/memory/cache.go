package memory

import (
	"context"
	"sync"
	"time"

	"lisvet-landing/internal/ports/cache"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Cache es la implementación por defecto: un mapa con TTL, suficiente
// para una sola instancia del servicio.
type Cache struct {
	mu  sync.RWMutex
	m   map[string]entry
	now func() time.Time
}

func New() cache.Cache {
	return &Cache{
		m:   make(map[string]entry),
		now: time.Now,
	}
}

func (c *Cache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		return "", false
	}
	return e.value, true
}

func (c *Cache) Set(_ context.Context, key, value string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.m[key] = entry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
}
