package cache

import (
	"context"
	"time"
)

// Namespaced wraps a Cache and prefixes every key.
// This keeps entries of different components (or different language
// editions) from colliding when they share one backend.
//
// Example usage:
//
//	en := NewNamespaced(backend, "en:")
//	de := NewNamespaced(backend, "de:")
type Namespaced struct {
	inner  Cache
	prefix string
}

// NewNamespaced creates a cache view with a key prefix.
// If inner is nil, a NullCache is used. Namespaces can be nested; the
// prefixes are concatenated.
func NewNamespaced(inner Cache, prefix string) Cache {
	if inner == nil {
		inner = NewNullCache()
	}
	if ns, ok := inner.(*Namespaced); ok {
		return &Namespaced{inner: ns.inner, prefix: ns.prefix + prefix}
	}
	return &Namespaced{inner: inner, prefix: prefix}
}

// Get retrieves a prefixed value.
func (n *Namespaced) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

// Set stores a prefixed value.
func (n *Namespaced) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return n.inner.Set(ctx, n.prefix+key, data, ttl)
}

// Delete removes a prefixed value.
func (n *Namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

// Close closes the underlying cache.
func (n *Namespaced) Close() error {
	return n.inner.Close()
}

var _ Cache = (*Namespaced)(nil)
