// Package cache provides the byte-oriented caches behind the layout Runner.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance (API servers)
//   - [NullCache]: stores nothing (caching disabled)
//
// Keys are derived by a [Keyer] from content hashes and the options that
// affect the cached value, so a change to either produces a new key.
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.NewDefaultKeyer().LayoutKey(cache.Hash(graphJSON), opts)
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Default time-to-live values per entry kind.
const (
	// TTLLayout applies to computed layouts. Layouts are pure functions of
	// graph and geometry, so they only expire to bound cache size.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact applies to rendered DOT and SVG output.
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque values by key. Implementations must be safe for
// concurrent use.
type Cache interface {
	// Get returns the value for key and whether it was found. A missing
	// or expired entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey keys a computed layout by the hash of its input graph.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys a rendered artifact by the hash of its layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds the options that change a computed layout.
type LayoutKeyOpts struct {
	NodeWidth    float64 `json:"node_width"`
	NodeHeight   float64 `json:"node_height"`
	LayerSpacing float64 `json:"layer_spacing"`
	NodeSpacing  float64 `json:"node_spacing"`
}

// ArtifactKeyOpts holds the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
