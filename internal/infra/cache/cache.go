package cache

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

// Init connects to redis when REDIS_ADDR is set. View counters degrade to
// the database column when it is not.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}

	rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("cache: redis at %s unreachable, view counters disabled: %v", addr, err)
		rdb = nil
	}
}

func Enabled() bool {
	return rdb != nil
}

func viewKey(propertyID uint) string {
	return fmt.Sprintf("property:%d:views", propertyID)
}

// IncrPropertyViews bumps the view counter; returns 0 when redis is off.
func IncrPropertyViews(ctx context.Context, propertyID uint) int64 {
	if rdb == nil {
		return 0
	}
	n, err := rdb.Incr(ctx, viewKey(propertyID)).Result()
	if err != nil {
		return 0
	}
	return n
}

// PropertyViews reads the counter; 0 when redis is off or the key is unset.
func PropertyViews(ctx context.Context, propertyID uint) int64 {
	if rdb == nil {
		return 0
	}
	n, err := rdb.Get(ctx, viewKey(propertyID)).Int64()
	if err != nil {
		return 0
	}
	return n
}
