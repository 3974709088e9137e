package service

import (
	"context"

	"inmomarket/internal/domain/entity"
	"inmomarket/internal/errors"
)

// ErrCacheMiss is returned when no cached value exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// PublicationCache caches pages of the public home feed. A page is
// stored as the listing slice plus the total active record count so a
// hit can rebuild the full pagination envelope.
type PublicationCache interface {
	// GetPage returns the cached page or ErrCacheMiss.
	GetPage(ctx context.Context, page, size int) ([]*entity.Publication, int64, error)

	// SetPage stores a page with the configured TTL.
	SetPage(ctx context.Context, page, size int, publications []*entity.Publication, total int64) error

	// Invalidate drops every cached page. Called after any write that
	// changes the feed.
	Invalidate(ctx context.Context) error
}
