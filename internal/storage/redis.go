package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-nlp-go/internal/config"
	"resume-nlp-go/internal/constants"
)

// ErrNotFound is returned when a key is not found in Redis.
// It wraps the underlying redis.Nil error for abstraction.
var ErrNotFound = redis.Nil

// Redis wraps the Redis client
type Redis struct {
	Client *redis.Client
	config *config.RedisConfig
}

// NewRedisAdapter creates a new Redis client connection
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	opt := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,

		// 连接池设置
		PoolSize:     cfg.PoolSize,     // 默认10
		MinIdleConns: cfg.MinIdleConns, // 默认2

		// 超时设置
		DialTimeout:  time.Duration(cfg.DialTimeoutSeconds) * time.Second,  // 默认5秒
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,  // 默认3秒
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second, // 默认3秒
	}

	client := redis.NewClient(opt)

	// Ping to check connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	return &Redis{
		Client: client,
		config: cfg,
	}, nil
}

// Close closes the Redis client connection
func (r *Redis) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

// Ping checks the Redis connection
func (r *Redis) Ping(ctx context.Context) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	return r.Client.Ping(ctx).Err()
}

// GetProfileCacheExpireDuration 返回配置的画像缓存过期时间
func (r *Redis) GetProfileCacheExpireDuration() time.Duration {
	days := r.config.ProfileCacheExpireDays
	if days <= 0 {
		return constants.ProfileCacheDuration
	}
	return time.Duration(days) * 24 * time.Hour
}

// CacheProfileJSON 以解析文本MD5为键缓存画像JSON
func (r *Redis) CacheProfileJSON(ctx context.Context, textMD5 string, profileJSON []byte) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	key := fmt.Sprintf(constants.KeyProfileJSON, textMD5)
	return r.Client.Set(ctx, key, profileJSON, r.GetProfileCacheExpireDuration()).Err()
}

// GetCachedProfileJSON 按解析文本MD5读取缓存的画像JSON。
// 缓存未命中返回 ErrNotFound。
func (r *Redis) GetCachedProfileJSON(ctx context.Context, textMD5 string) ([]byte, error) {
	if r.Client == nil {
		return nil, fmt.Errorf("redis client is not initialized")
	}
	key := fmt.Sprintf(constants.KeyProfileJSON, textMD5)
	val, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err // 包括 redis.Nil
	}
	return val, nil
}

// CheckAndAddTextMD5 检查并添加解析文本MD5到去重集合，原子操作。
// 返回true表示MD5已存在（重复提交）。
func (r *Redis) CheckAndAddTextMD5(ctx context.Context, md5Hex string) (exists bool, err error) {
	if r.Client == nil {
		return false, fmt.Errorf("redis client is not initialized")
	}

	pipe := r.Client.Pipeline()
	addCmd := pipe.SAdd(ctx, constants.KeyTextMD5Set, md5Hex)
	pipe.ExpireNX(ctx, constants.KeyTextMD5Set, r.GetProfileCacheExpireDuration())
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	// SAdd返回新增成员数，0表示已存在
	added, err := addCmd.Result()
	if err != nil {
		return false, err
	}
	return added == 0, nil
}

// MapTextMD5ToProfileUUID 记录解析文本MD5到画像UUID的映射
func (r *Redis) MapTextMD5ToProfileUUID(ctx context.Context, md5Hex, profileUUID string) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	key := fmt.Sprintf(constants.KeyTextMD5ToProfileUUID, md5Hex)
	return r.Client.Set(ctx, key, profileUUID, r.GetProfileCacheExpireDuration()).Err()
}

// GetProfileUUIDByTextMD5 按解析文本MD5查询画像UUID，未命中返回 ErrNotFound
func (r *Redis) GetProfileUUIDByTextMD5(ctx context.Context, md5Hex string) (string, error) {
	if r.Client == nil {
		return "", fmt.Errorf("redis client is not initialized")
	}
	key := fmt.Sprintf(constants.KeyTextMD5ToProfileUUID, md5Hex)
	return r.Client.Get(ctx, key).Result()
}
