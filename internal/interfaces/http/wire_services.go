package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stealthycommerce/stealthy/internal/infrastructure/cache"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/config"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/email"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/metrics"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/ratelimit"
	"github.com/stealthycommerce/stealthy/internal/interfaces/http/middleware"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/services/markdown"
)

// initInfrastructure connects Redis when enabled and builds the services the
// use cases and middleware share.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	c.renderer = markdown.NewRenderer()

	if c.redis != nil {
		c.searchCache = cache.NewRedisSearchCache(c.redis, cfg.Catalog.SearchCacheTTL(), log.Named("search-cache"))
	} else {
		c.searchCache = cache.NopSearchCache{}
	}

	if cfg.Metrics.Enabled {
		c.metrics = metrics.New()
	}

	if cfg.Email.Enabled {
		smtp := email.NewSMTPReceiptNotifier(email.SMTPConfigFrom(cfg.Email), c.renderer)
		c.notifier = email.NewAsyncReceiptNotifier(smtp, log.Named("receipts"))
		log.Infow("order receipts enabled", "smtp_host", cfg.Email.SMTPHost)
	}

	if cfg.RateLimit.Enabled {
		if c.redis == nil {
			log.Warnw("rate limiting requires redis, continuing without it")
		} else {
			c.rateLimiter = middleware.NewRateLimiter(
				ratelimit.NewRedisRateLimiter(c.redis),
				ratelimit.Limit{Requests: cfg.RateLimit.Requests, Window: cfg.RateLimit.Window()},
				log,
			)
		}
	}

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}
