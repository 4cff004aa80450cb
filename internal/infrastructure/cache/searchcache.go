package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

const (
	searchKeyPrefix     = "catalog:search:"
	searchGenerationKey = "catalog:search:generation"
	defaultSearchTTL    = 5 * time.Minute
)

type cachedProductOffer struct {
	ProductID   uint            `json:"product_id"`
	OfferID     uint            `json:"offer_id"`
	Brand       string          `json:"brand"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedDate time.Time       `json:"created_date"`
}

type cachedSearchPage struct {
	Rows  []cachedProductOffer `json:"rows"`
	Total int64                `json:"total"`
}

// RedisSearchCache stores search pages under a generation counter. Invalidate
// bumps the counter so every older page becomes unreachable and ages out by TTL.
type RedisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewRedisSearchCache creates a search cache; ttl <= 0 uses five minutes.
func NewRedisSearchCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisSearchCache {
	if ttl <= 0 {
		ttl = defaultSearchTTL
	}
	return &RedisSearchCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisSearchCache) Get(ctx context.Context, filter catalog.SearchFilter) ([]*catalog.ProductOffer, int64, bool) {
	key, err := c.key(ctx, filter)
	if err != nil {
		c.logger.Warnw("search cache unavailable", "error", err)
		return nil, 0, false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, 0, false
	}
	if err != nil {
		c.logger.Warnw("failed to read search cache", "key", key, "error", err)
		return nil, 0, false
	}

	var page cachedSearchPage
	if err := json.Unmarshal(data, &page); err != nil {
		c.logger.Warnw("failed to decode cached search page", "key", key, "error", err)
		return nil, 0, false
	}

	rows := make([]*catalog.ProductOffer, 0, len(page.Rows))
	for _, r := range page.Rows {
		rows = append(rows, &catalog.ProductOffer{
			ProductID:   r.ProductID,
			OfferID:     r.OfferID,
			Brand:       r.Brand,
			ProductName: r.ProductName,
			Description: r.Description,
			Price:       r.Price,
			CreatedDate: r.CreatedDate,
		})
	}
	return rows, page.Total, true
}

func (c *RedisSearchCache) Set(ctx context.Context, filter catalog.SearchFilter, rows []*catalog.ProductOffer, total int64) {
	key, err := c.key(ctx, filter)
	if err != nil {
		c.logger.Warnw("search cache unavailable", "error", err)
		return
	}

	page := cachedSearchPage{Rows: make([]cachedProductOffer, 0, len(rows)), Total: total}
	for _, r := range rows {
		page.Rows = append(page.Rows, cachedProductOffer{
			ProductID:   r.ProductID,
			OfferID:     r.OfferID,
			Brand:       r.Brand,
			ProductName: r.ProductName,
			Description: r.Description,
			Price:       r.Price,
			CreatedDate: r.CreatedDate,
		})
	}

	data, err := json.Marshal(page)
	if err != nil {
		c.logger.Warnw("failed to encode search page", "error", err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttlWithJitter()).Err(); err != nil {
		c.logger.Warnw("failed to write search cache", "key", key, "error", err)
		return
	}

	c.logger.Debugw("search page cached", "key", key, "rows", len(rows))
}

func (c *RedisSearchCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, searchGenerationKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate search cache: %w", err)
	}
	c.logger.Debugw("search cache invalidated")
	return nil
}

func (c *RedisSearchCache) key(ctx context.Context, filter catalog.SearchFilter) (string, error) {
	gen, err := c.client.Get(ctx, searchGenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("failed to read search cache generation: %w", err)
	}
	return fmt.Sprintf("%sv%d:%s:%t:%d:%d", searchKeyPrefix, gen,
		filter.SortBy, filter.Descending, filter.Offset(), filter.Limit()), nil
}

// ttlWithJitter spreads expiry over [ttl, ttl*1.2) to avoid stampedes.
func (c *RedisSearchCache) ttlWithJitter() time.Duration {
	jitter := time.Duration(rand.Int63n(int64(c.ttl)/5 + 1))
	return c.ttl + jitter
}

// NopSearchCache never stores anything. Used when Redis is disabled.
type NopSearchCache struct{}

func (NopSearchCache) Get(context.Context, catalog.SearchFilter) ([]*catalog.ProductOffer, int64, bool) {
	return nil, 0, false
}

func (NopSearchCache) Set(context.Context, catalog.SearchFilter, []*catalog.ProductOffer, int64) {}

func (NopSearchCache) Invalidate(context.Context) error { return nil }

var (
	_ catalog.SearchCache = (*RedisSearchCache)(nil)
	_ catalog.SearchCache = NopSearchCache{}
)
