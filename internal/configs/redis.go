package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects to the redis instance backing the task facet
// cache. The facet keys carry their own TTL, so rueidis client-side
// caching stays off.
func NewRedisClient(addr string) rueidis.Client {
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{addr},
		SelectDB:     0,
		DisableCache: true,
	})
	if err != nil {
		log.Fatalf("cannot reach redis at %s: %v", addr, err)
	}
	return client
}
