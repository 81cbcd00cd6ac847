package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"career-compass/internal/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis tracks the currently valid refresh token per account, enabling
// rotation with reuse detection. When Redis is unreachable the store reports
// unavailability and auth degrades to stateless refresh validation instead
// of failing requests.
type Redis struct {
	client *redis.Client
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[TokenStore] Redis unavailable, refresh rotation is stateless: %v", err)
		}
		_ = client.Close()
		return &Redis{client: nil, logger: logger}
	}

	return &Redis{client: client, logger: logger}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[TokenStore] Redis unavailable, refresh rotation is stateless: %v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

func refreshKey(userID uuid.UUID) string {
	return "auth:refresh:" + userID.String()
}

// SetCurrentRefreshToken records tokenID as the only refresh token accepted
// for the account, expiring with the token itself.
func (r *Redis) SetCurrentRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	if err := r.client.Set(ctx, refreshKey(userID), tokenID, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// CurrentRefreshToken returns the recorded token ID for the account. found
// is false when nothing is recorded or Redis is unavailable.
func (r *Redis) CurrentRefreshToken(ctx context.Context, userID uuid.UUID) (string, bool, error) {
	if r.isUnavailable() {
		return "", false, nil
	}
	v, err := r.client.Get(ctx, refreshKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		r.warnUnavailableOnce(err)
		return "", false, err
	}
	return v, v != "", nil
}

// ClearRefreshToken drops the account's refresh state, invalidating every
// outstanding refresh token once reuse is detected.
func (r *Redis) ClearRefreshToken(ctx context.Context, userID uuid.UUID) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Del(ctx, refreshKey(userID)).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}
