package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/microempresas-api/internal/infrastructure/cache"
	"github.com/jhoicas/microempresas-api/pkg/config"
)

func TestNewRedisCache_ServidorInaccesible(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := cache.NewRedisCache(ctx, config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestRedisCache_DeleteSinClaves(t *testing.T) {
	c := cache.NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	defer c.Close()

	assert.NoError(t, c.Delete(context.Background()))
}
