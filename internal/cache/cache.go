// Package cache memoizes generated fingerprints. Concurrent requests for
// the same digest and version share one computation, recent results are
// kept in a bounded in-memory LRU, and an optional store persists results
// across runs.
package cache

import (
	"container/list"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"lifehash/internal/fingerprint"
	"lifehash/internal/store"

	"golang.org/x/sync/singleflight"
)

// DefaultEntries is the in-memory capacity used when Options.Entries is not
// positive.
const DefaultEntries = 256

// Options configures a Cache.
type Options struct {
	Entries int
	// Store, when set, is read before generating and written after.
	Store  *store.Store
	Logger *slog.Logger
}

// Stats counts how requests were served.
type Stats struct {
	Hits      int
	StoreHits int
	Misses    int
	Evictions int
}

type key struct {
	digest  string
	version fingerprint.Version
}

type entry struct {
	key   key
	image *fingerprint.Image
}

// Cache is safe for concurrent use. Returned images are shared and must be
// treated as read-only.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	items    map[key]*list.Element
	stats    Stats

	group  singleflight.Group
	store  *store.Store
	logger *slog.Logger
}

// New returns an empty cache.
func New(opts Options) *Cache {
	capacity := opts.Entries
	if capacity <= 0 {
		capacity = DefaultEntries
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[key]*list.Element, capacity),
		store:    opts.Store,
		logger:   logger,
	}
}

// Get returns the fingerprint for digest under v, generating it at most
// once however many callers ask concurrently. Cancelling ctx abandons the
// wait but not a generation already in progress.
func (c *Cache) Get(ctx context.Context, digest []byte, v fingerprint.Version) (*fingerprint.Image, error) {
	k := key{digest: string(digest), version: v}
	if img, ok := c.lookup(k); ok {
		return img, nil
	}

	flightKey := v.String() + "/" + hex.EncodeToString(digest)
	ch := c.group.DoChan(flightKey, func() (any, error) {
		if img, ok := c.lookup(k); ok {
			return img, nil
		}
		img, err := c.load(digest, v)
		if err != nil {
			return nil, err
		}
		c.insert(k, img)
		return img, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*fingerprint.Image), nil
	}
}

func (c *Cache) load(digest []byte, v fingerprint.Version) (*fingerprint.Image, error) {
	if c.store != nil {
		rec, err := c.store.Get(digest, v)
		switch {
		case err == nil:
			img, err := rec.Image()
			if err == nil {
				c.count(func(s *Stats) { s.StoreHits++ })
				return img, nil
			}
			c.logger.Warn("stored fingerprint unusable", "digest", hex.EncodeToString(digest), "version", v.String(), "error", err)
		case errors.Is(err, store.ErrNotFound):
		default:
			c.logger.Warn("fingerprint store read failed", "digest", hex.EncodeToString(digest), "version", v.String(), "error", err)
		}
	}

	img, err := fingerprint.Generate(digest, v)
	if err != nil {
		return nil, err
	}
	c.count(func(s *Stats) { s.Misses++ })
	c.logger.Debug("generated fingerprint",
		"digest", hex.EncodeToString(digest),
		"version", v.String(),
		"generations", img.Generations,
	)

	if c.store != nil {
		if err := c.store.Put(store.NewRecord(digest, img)); err != nil {
			return nil, fmt.Errorf("persisting fingerprint: %w", err)
		}
	}
	return img, nil
}

func (c *Cache) lookup(k key) (*fingerprint.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[k]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	c.stats.Hits++
	return el.Value.(*entry).image, true
}

func (c *Cache) insert(k key, img *fingerprint.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[k]; ok {
		el.Value.(*entry).image = img
		c.order.MoveToFront(el)
		return
	}
	c.items[k] = c.order.PushFront(&entry{key: k, image: img})
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry).key)
		c.stats.Evictions++
	}
}

func (c *Cache) count(fn func(*Stats)) {
	c.mu.Lock()
	fn(&c.stats)
	c.mu.Unlock()
}

// Len returns the number of images held in memory.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns a snapshot of the request counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
