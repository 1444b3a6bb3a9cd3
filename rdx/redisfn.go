package rdx

import (
	"log"
	"nabatea/globals"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

// RdxGet returns the cached value for key, or "" when missing.
func RdxGet(key string) (string, error) {
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		log.Println("Redis GET error:", err)
		return "", err
	}
	return val, nil
}

func RdxSet(key, value string) error {
	if err := Conn.Set(globals.Ctx, key, value, 0).Err(); err != nil {
		log.Println("Redis SET error:", err)
		return err
	}
	return nil
}

func RdxSetWithTTL(key, value string, ttl time.Duration) error {
	if err := Conn.Set(globals.Ctx, key, value, ttl).Err(); err != nil {
		log.Println("Redis SET error:", err)
		return err
	}
	return nil
}

func RdxDel(key string) error {
	if err := Conn.Del(globals.Ctx, key).Err(); err != nil {
		log.Println("Redis DEL error:", err)
		return err
	}
	return nil
}
