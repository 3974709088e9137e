package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"inmomarket/config"
	"inmomarket/internal/domain/entity"
	"inmomarket/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	homeFeedKeyPrefix  = "homefeed:"
	homeFeedScanCount  = 100
	defaultHomeFeedTTL = 5 * time.Minute
)

// publicationCache implements the service.PublicationCache interface
// on Redis. Each page is one key, invalidation scans the prefix.
type publicationCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// cachedPage is the stored representation of one home feed page.
type cachedPage struct {
	Publications []*entity.Publication `json:"publications"`
	Total        int64                 `json:"total"`
}

// PublicationCacheParams holds dependencies for the page cache.
type PublicationCacheParams struct {
	fx.In

	Client *redis.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewPublicationCache is the constructor for publicationCache.
func NewPublicationCache(params PublicationCacheParams) service.PublicationCache {
	ttl := defaultHomeFeedTTL
	if params.Config.Cache != nil && params.Config.Cache.PageTTL > 0 {
		ttl = params.Config.Cache.PageTTL
	}

	return &publicationCache{
		client: params.Client,
		ttl:    ttl,
		logger: params.Logger,
	}
}

// GetPage returns the cached page or ErrCacheMiss.
func (c *publicationCache) GetPage(ctx context.Context, page, size int) ([]*entity.Publication, int64, error) {
	data, err := c.client.Get(ctx, pageKey(page, size)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, 0, service.ErrCacheMiss
		}

		return nil, 0, errors.Wrap(err, "failed to read cached page")
	}

	var cached cachedPage
	if err := json.Unmarshal(data, &cached); err != nil {
		// A corrupt entry behaves like a miss, the next write heals it.
		return nil, 0, service.ErrCacheMiss
	}

	return cached.Publications, cached.Total, nil
}

// SetPage stores a page with the configured TTL.
func (c *publicationCache) SetPage(ctx context.Context, page, size int, publications []*entity.Publication, total int64) error {
	data, err := json.Marshal(cachedPage{
		Publications: publications,
		Total:        total,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, pageKey(page, size), data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write cached page")
	}

	return nil
}

// Invalidate drops every cached page.
func (c *publicationCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, homeFeedKeyPrefix+"*", homeFeedScanCount).Result()
		if err != nil {
			return errors.Wrap(err, "failed to scan cached pages")
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrap(err, "failed to delete cached pages")
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	c.logger.Debug("Home feed cache invalidated")

	return nil
}

func pageKey(page, size int) string {
	return fmt.Sprintf("%sp%d:s%d", homeFeedKeyPrefix, page, size)
}
