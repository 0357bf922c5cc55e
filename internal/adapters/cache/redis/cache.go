// Package redis implementa el cache de widgets sobre Redis, para cuando
// el servicio corre con más de una instancia detrás de un balanceador.
package redis

import (
	"context"
	"time"

	goredis "github.com/go-redis/redis/v8"
)

type Cache struct {
	rdb *goredis.Client
}

func New(addr string) *Cache {
	return &Cache{
		rdb: goredis.NewClient(&goredis.Options{Addr: addr}),
	}
}

// Get trata cualquier error de Redis como miss: el widget simplemente
// vuelve a consultar la API pública.
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	v, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	_ = c.rdb.Set(ctx, key, value, ttl).Err()
}

// Ping verifica la conexión al arrancar.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
