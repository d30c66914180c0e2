// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/sixdeg/core"
	"github.com/katalvlaran/sixdeg/internal/telemetry"
)

// ErrGraphNil is returned by NewCache for a nil graph.
var ErrGraphNil = errors.New("centrality: graph is nil")

// Cache memoizes AverageSeparationFrom per root over one graph.
//
// The graph must not change while the cache is in use; call Invalidate
// after any mutation. Concurrent misses for the same root share a single
// BFS.
//
// Thread Safety: Safe for concurrent use.
type Cache[V comparable, L any] struct {
	graph *core.Graph[V, L]
	key   func(V) string

	mu     sync.RWMutex
	values map[V]float64
	gen    uint64
	group  singleflight.Group
}

// CacheOption configures a Cache.
type CacheOption[V comparable] func(*cacheConfig[V])

type cacheConfig[V comparable] struct {
	key func(V) string
}

// WithKeyFunc sets how roots are keyed for duplicate-call suppression.
// key must be injective over the graph's vertices. Nil is ignored.
func WithKeyFunc[V comparable](key func(V) string) CacheOption[V] {
	return func(c *cacheConfig[V]) {
		if key != nil {
			c.key = key
		}
	}
}

// NewCache returns an empty cache over g.
func NewCache[V comparable, L any](g *core.Graph[V, L], opts ...CacheOption[V]) (*Cache[V, L], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := cacheConfig[V]{key: func(v V) string { return fmt.Sprintf("%T:%#v", v, v) }}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache[V, L]{
		graph:  g,
		key:    cfg.key,
		values: make(map[V]float64),
	}, nil
}

// Graph returns the graph the cache answers for.
func (c *Cache[V, L]) Graph() *core.Graph[V, L] { return c.graph }

// AverageSeparation returns the cached average separation of root,
// computing it on first use.
func (c *Cache[V, L]) AverageSeparation(ctx context.Context, root V) (float64, error) {
	c.mu.RLock()
	v, ok := c.values[root]
	gen := c.gen
	c.mu.RUnlock()
	if ok {
		telemetry.RecordCacheResult(telemetry.CacheHit)
		return v, nil
	}

	res, err, shared := c.group.Do(c.flightKey(gen, root), func() (interface{}, error) {
		telemetry.RecordBFSRun("centrality.cache")
		avg, err := AverageSeparationFrom(ctx, c.graph, root)
		if err != nil {
			return 0.0, err
		}
		c.mu.Lock()
		if c.gen == gen {
			c.values[root] = avg
		}
		c.mu.Unlock()

		return avg, nil
	})
	if shared {
		telemetry.RecordCacheResult(telemetry.CacheShared)
	} else {
		telemetry.RecordCacheResult(telemetry.CacheMiss)
	}
	if err != nil {
		return 0, err
	}

	return res.(float64), nil
}

// Len returns the number of memoized roots.
func (c *Cache[V, L]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.values)
}

// Invalidate drops every memoized value. In-flight computations started
// before the call do not repopulate the cache.
func (c *Cache[V, L]) Invalidate() {
	c.mu.Lock()
	c.values = make(map[V]float64)
	c.gen++
	c.mu.Unlock()
}

func (c *Cache[V, L]) flightKey(gen uint64, root V) string {
	return fmt.Sprintf("%d/%s", gen, c.key(root))
}
