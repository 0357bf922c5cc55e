package cache

import (
	"context"
	"time"
)

// Cache es un KV simple con TTL para las respuestas de los widgets.
// Get devuelve ok=false tanto para miss como para entrada vencida.
type Cache interface {
	Get(ctx context.Context, key string) (value string, ok bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}
