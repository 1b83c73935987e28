// Package cache provides byte-oriented caches for upstream HTTP responses.
//
// Three backends implement [Cache]:
//   - [NullCache]: never stores anything (caching disabled, tests)
//   - [FileCache]: one JSON file per entry, used by the CLI
//   - [RedisCache]: shared cache for multi-instance deployments of the server
//
// Keys are plain strings. Use [HTTPKey] to build keys for upstream responses
// and [NewNamespaced] to give a component its own key space.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads with an optional time-to-live.
//
// Get reports a miss with (nil, false, nil); an error is returned only when
// the backend itself fails. A ttl of 0 in Set means the entry never expires.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// HTTPKey generates a key for caching an upstream response.
// The namespace identifies the upstream (e.g. "wikipedia:", "commons:").
func HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}
