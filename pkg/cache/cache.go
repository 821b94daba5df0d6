// Package cache stores rendered diagrams keyed by machine and format.
//
// Three backends share the [Cache] interface: [FileCache] for the CLI,
// [RedisCache] for the HTTP server and [NullCache] when caching is off.
// Every backend reports hits, misses and writes through
// [observability.Cache].
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/matzehuels/fsa/pkg/observability"
)

// Cache is a byte store with per-entry expiry. A miss is (nil, false, nil),
// never an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A ttl of zero or less keeps the entry forever.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DiagramKey identifies a rendered diagram as "diagram:<sha256>". extra holds
// anything else that changes the picture, such as the input of an overlaid
// run. Machine names are case-insensitive.
func DiagramKey(machine, format string, extra ...string) string {
	parts := append([]string{strings.ToLower(machine), format}, extra...)
	return "diagram:" + digest(strings.Join(parts, "\x00"))
}

// keyType is the prefix before the first colon, used as a metrics label.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "other"
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// NullCache stores nothing; every Get is a miss.
type NullCache struct{}

// NewNullCache returns a cache that is always empty.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	observability.Cache().OnCacheMiss(ctx, keyType(key))
	return nil, false, nil
}

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                    { return nil }
func (NullCache) Close() error                                             { return nil }
