package pattern

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/tartampluch/go-holiday/internal/config"
)

// Cache keeps every successfully loaded pattern for the lifetime of the
// process. Each country is loaded from the wrapped source at most once;
// failures are not remembered and will be retried on the next call.
// Concurrent loads of one country share a single call to the source, while
// different countries load in parallel. All methods are safe for concurrent use.
type Cache struct {
	src    Source
	flight singleflight.Group

	mu       sync.RWMutex
	patterns map[string]*Pattern
}

// NewCache wraps src.
func NewCache(src Source) *Cache {
	return &Cache{
		src:      src,
		patterns: make(map[string]*Pattern),
	}
}

// Load implements Source.
func (c *Cache) Load(ctx context.Context, country string) (*Pattern, error) {
	code, err := NormalizeCountry(country)
	if err != nil {
		return nil, err
	}

	if p, ok := c.lookup(code); ok {
		slog.Debug(config.MsgPatternCached,
			config.LogKeyComponent, config.CompPattern,
			config.LogKeyCountry, code,
		)
		return p, nil
	}

	v, err, _ := c.flight.Do(code, func() (any, error) {
		// A previous flight may have stored the pattern after our read above.
		if p, ok := c.lookup(code); ok {
			return p, nil
		}

		p, err := c.src.Load(ctx, code)
		if err != nil {
			slog.Debug(config.MsgPatternMissing,
				config.LogKeyComponent, config.CompPattern,
				config.LogKeyCountry, code,
				config.LogKeyError, err,
			)
			return nil, err
		}

		c.mu.Lock()
		c.patterns[code] = p
		c.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Pattern), nil
}

func (c *Cache) lookup(code string) (*Pattern, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.patterns[code]
	return p, ok
}

// Countries implements Lister when the wrapped source does.
func (c *Cache) Countries(ctx context.Context) ([]string, error) {
	if l, ok := c.src.(Lister); ok {
		return l.Countries(ctx)
	}
	return nil, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.patterns)
}
