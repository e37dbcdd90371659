package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/seonho/tutorkit/ent"
	"github.com/seonho/tutorkit/ent/extractioncacheentry"
)

// ErrCacheMiss is returned when no cache row exists for a content hash.
var ErrCacheMiss = errors.New("extraction cache miss")

// CachedExtraction is one extraction result stored against the content hash
// of its source locator. Payload is the extractor's JSON-serialized result;
// the caller decides how long an entry stays valid.
type CachedExtraction struct {
	ContentHash string
	Payload     []byte
	CreatedAt   time.Time
}

// ExtractionCacheRepo stores content-extraction results.
type ExtractionCacheRepo interface {
	// Get returns the cached entry for hash. Returns ErrCacheMiss if absent.
	Get(ctx context.Context, hash string) (*CachedExtraction, error)

	// Put inserts or replaces the entry for hash, resetting its age.
	Put(ctx context.Context, hash string, payload []byte) error

	// Prune deletes entries older than maxAge and reports how many went.
	Prune(ctx context.Context, maxAge time.Duration) (int64, error)
}

// extractionCacheRepo implements ExtractionCacheRepo using the ent client.
type extractionCacheRepo struct {
	client *ent.Client
}

func (r *extractionCacheRepo) Get(ctx context.Context, hash string) (*CachedExtraction, error) {
	e, err := r.client.ExtractionCacheEntry.Query().
		Where(extractioncacheentry.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("get cached extraction: %w", err)
	}
	return &CachedExtraction{
		ContentHash: e.ContentHash,
		Payload:     e.Payload,
		CreatedAt:   e.CreatedAt,
	}, nil
}

func (r *extractionCacheRepo) Put(ctx context.Context, hash string, payload []byte) error {
	n, err := r.client.ExtractionCacheEntry.Update().
		Where(extractioncacheentry.ContentHash(hash)).
		SetPayload(payload).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("refresh cached extraction: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.ExtractionCacheEntry.Create().
		SetContentHash(hash).
		SetPayload(payload).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("put cached extraction: %w", err)
	}
	return nil
}

func (r *extractionCacheRepo) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	n, err := r.client.ExtractionCacheEntry.Delete().
		Where(extractioncacheentry.CreatedAtLT(time.Now().UTC().Add(-maxAge))).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune extraction cache: %w", err)
	}
	return int64(n), nil
}
