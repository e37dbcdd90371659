package materials

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/seonho/tutorkit/internal/logging"
	"github.com/seonho/tutorkit/internal/store"
)

// DefaultCacheMaxAge is how long a cached extraction stays valid before the
// source is fetched again.
const DefaultCacheMaxAge = 30 * 24 * time.Hour

// ContentExtractor turns a material into text, keywords, and content chunks.
// Implementations own the fetching and parsing; a failed extraction is
// reported through Extraction.Success, an error means the attempt itself
// could not run.
type ContentExtractor interface {
	Extract(ctx context.Context, m Material) (Extraction, error)
}

// ContentHash derives the cache key for a material's source locator.
func ContentHash(locator string) string {
	sum := sha256.Sum256([]byte(locator))
	return hex.EncodeToString(sum[:])
}

// CachedExtractor wraps a ContentExtractor with persistent caching keyed by
// the material's content hash. Only successful extractions are cached, so a
// transient fetch failure never pins an empty result for the full window.
type CachedExtractor struct {
	inner  ContentExtractor
	cache  store.ExtractionCacheRepo
	maxAge time.Duration
	log    *logging.Logger
}

func NewCachedExtractor(inner ContentExtractor, cache store.ExtractionCacheRepo, log *logging.Logger) *CachedExtractor {
	if log == nil {
		log = logging.Nop()
	}
	return &CachedExtractor{inner: inner, cache: cache, maxAge: DefaultCacheMaxAge, log: log}
}

// WithMaxAge overrides the cache validity window.
func (c *CachedExtractor) WithMaxAge(maxAge time.Duration) *CachedExtractor {
	c.maxAge = maxAge
	return c
}

func (c *CachedExtractor) Extract(ctx context.Context, m Material) (Extraction, error) {
	hash := ContentHash(m.Locator())

	if entry, err := c.cache.Get(ctx, hash); err == nil {
		if time.Since(entry.CreatedAt) < c.maxAge {
			var ex Extraction
			if uerr := json.Unmarshal(entry.Payload, &ex); uerr == nil {
				c.log.Debug("extraction cache hit", "material", m.Title, "hash", hash)
				return ex, nil
			}
			c.log.Warn("discarding unreadable cache entry", "hash", hash)
		}
	} else if !errors.Is(err, store.ErrCacheMiss) {
		c.log.Warn("extraction cache lookup failed", "hash", hash, "error", err)
	}

	ex, err := c.inner.Extract(ctx, m)
	if err != nil {
		return Extraction{}, err
	}

	if ex.Success {
		payload, merr := json.Marshal(ex)
		if merr == nil {
			if perr := c.cache.Put(ctx, hash, payload); perr != nil {
				c.log.Warn("failed to cache extraction", "hash", hash, "error", perr)
			}
		}
	}
	return ex, nil
}
