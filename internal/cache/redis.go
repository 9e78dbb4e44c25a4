// Package cache 提供 Redis 操作的封装
// 处理偏好存储、在线视图状态和跨实例事件广播
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"seller-workspace/internal/config"
)

// Redis 键和频道
const (
	PreferencePrefix = "workspace:pref:"
	EventsChannel    = "workspace:events"
	OnlineViewsKey   = "workspace:views:online"
)

// viewHeartbeatTTL 视图心跳过期时间
const viewHeartbeatTTL = 2 * time.Minute

// RedisCache 封装 Redis 客户端，提供业务相关的缓存操作
type RedisCache struct {
	client *redis.Client // Redis 客户端实例
}

// NewRedisCache 创建 RedisCache 实例
// 参数:
//   - cfg: 应用配置（包含 Redis 连接信息）
//
// 返回:
//   - *RedisCache: 缓存实例
//   - error: 连接错误
func NewRedisCache(cfg *config.Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client}, nil
}

// NewRedisCacheFromClient 使用已有客户端创建实例
func NewRedisCacheFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Close 关闭 Redis 连接
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// ==================== 偏好存储 ====================
// 实现 preference.Store，所有键加上 workspace:pref: 前缀

func preferenceKey(key string) string {
	return PreferencePrefix + key
}

// Get 读取偏好值
// 参数:
//   - ctx: 上下文
//   - key: 偏好键（不含前缀）
//
// 返回:
//   - string: 值
//   - bool: 键是否存在
//   - error: Redis 操作错误
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.client.Get(ctx, preferenceKey(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set 写入偏好值，不设置过期时间
func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, preferenceKey(key), value, 0).Err()
}

// Delete 删除偏好值
// DEL 在键不存在时不会报错
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, preferenceKey(key)).Err()
}

// ==================== 在线视图 ====================
// 使用 Redis Set 记录已连接的工作台视图

// SetViewOnline 标记视图在线
// 当 WebSocket 连接建立时调用
// 参数:
//   - ctx: 上下文
//   - viewID: 视图连接ID
//
// 返回:
//   - error: Redis 操作错误
func (c *RedisCache) SetViewOnline(ctx context.Context, viewID string) error {
	pipe := c.client.Pipeline()
	pipe.SAdd(ctx, OnlineViewsKey, viewID)
	pipe.Set(ctx, fmt.Sprintf("workspace:view:%s:heartbeat", viewID), time.Now().Unix(), viewHeartbeatTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// SetViewOffline 标记视图离线
func (c *RedisCache) SetViewOffline(ctx context.Context, viewID string) error {
	pipe := c.client.Pipeline()
	pipe.SRem(ctx, OnlineViewsKey, viewID)
	pipe.Del(ctx, fmt.Sprintf("workspace:view:%s:heartbeat", viewID))
	_, err := pipe.Exec(ctx)
	return err
}

// UpdateViewHeartbeat 刷新视图心跳
// 客户端停止发送心跳后，心跳 Key 会在 2 分钟后自动过期
func (c *RedisCache) UpdateViewHeartbeat(ctx context.Context, viewID string) error {
	return c.client.Set(ctx, fmt.Sprintf("workspace:view:%s:heartbeat", viewID), time.Now().Unix(), viewHeartbeatTTL).Err()
}

// OnlineViews 返回所有在线视图
func (c *RedisCache) OnlineViews(ctx context.Context) ([]string, error) {
	return c.client.SMembers(ctx, OnlineViewsKey).Result()
}

// ==================== Pub/Sub ====================
// 用于多服务实例间的事件广播

// PublishEvent 发布状态变更事件
// 参数:
//   - ctx: 上下文
//   - event: 事件内容（会被 JSON 序列化）
//
// 返回:
//   - error: 序列化或 Redis 操作错误
func (c *RedisCache) PublishEvent(ctx context.Context, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return c.client.Publish(ctx, EventsChannel, data).Err()
}

// SubscribeEvents 订阅状态变更事件
// 返回 PubSub 对象，调用方负责关闭
func (c *RedisCache) SubscribeEvents(ctx context.Context) *redis.PubSub {
	return c.client.Subscribe(ctx, EventsChannel)
}

// ==================== 通用方法 ====================

// Ping 检查 Redis 连接
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
