package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/CleanSweep/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// DriveCache — кэш деталей уборки в Redis. Без адреса работает как заглушка,
// по аналогии с отключаемым телеграм-ботом.
type DriveCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewDriveCache(addr, password string, db int, ttl time.Duration, logger logger.Logger) *DriveCache {
	if addr == "" {
		logger.Warn("redis address is empty, drive cache disabled")
		return &DriveCache{client: nil, ttl: ttl, logger: logger}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &DriveCache{client: client, ttl: ttl, logger: logger}
}

func (c *DriveCache) GetDetails(ctx context.Context, driveID string) (*domain.DriveDetails, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, detailsKey(driveID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Error("drive cache get failed",
				logger.String("drive_id", driveID),
				logger.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var details domain.DriveDetails
	if err = json.Unmarshal(data, &details); err != nil {
		c.logger.Error("drive cache entry corrupted",
			logger.String("drive_id", driveID),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	return &details, true
}

func (c *DriveCache) SetDetails(ctx context.Context, details *domain.DriveDetails) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(details)
	if err != nil {
		c.logger.Error("drive cache marshal failed",
			logger.String("drive_id", details.Drive.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	if err = c.client.Set(ctx, detailsKey(details.Drive.ID), data, c.ttl).Err(); err != nil {
		c.logger.Error("drive cache set failed",
			logger.String("drive_id", details.Drive.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (c *DriveCache) Invalidate(ctx context.Context, driveID string) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, detailsKey(driveID)).Err(); err != nil {
		c.logger.Error("drive cache invalidate failed",
			logger.String("drive_id", driveID),
			logger.String("error", err.Error()),
		)
	}
}

func (c *DriveCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func detailsKey(driveID string) string {
	return "drive:details:" + driveID
}
