package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 24 * time.Hour

// RedisProgressStore 管理 Redis 中的 slot 状态记录（幂等控制）。
// key 形如 progress:<stream>:slot:<n>，stream 区分不同的数据流。
type RedisProgressStore struct {
	rdb    redis.Cmdable
	stream string
	ttl    time.Duration
}

// NewRedisProgressStore 创建 Redis 判重管理器，ttl <= 0 时使用 24h
func NewRedisProgressStore(rdb redis.Cmdable, stream string, ttl time.Duration) *RedisProgressStore {
	if stream == "" {
		stream = "default"
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisProgressStore{rdb: rdb, stream: stream, ttl: ttl}
}

func (r *RedisProgressStore) key(slot uint64) string {
	return fmt.Sprintf("progress:%s:slot:%d", r.stream, slot)
}

// GetSlotStatus 获取 slot 的状态（Unknown / Processed / Invalid / Pending）
func (r *RedisProgressStore) GetSlotStatus(ctx context.Context, slot uint64) (SlotStatus, error) {
	val, err := r.rdb.Get(ctx, r.key(slot)).Int()
	switch {
	case errors.Is(err, redis.Nil):
		return SlotUnknown, nil
	case err != nil:
		return SlotUnknown, fmt.Errorf("redis get error: %w", err)
	}
	switch SlotStatus(val) {
	case SlotProcessed, SlotInvalid, SlotPending:
		return SlotStatus(val), nil
	default:
		return SlotUnknown, nil // 容错处理
	}
}

// MarkSlotStatus 通用设置 slot 的状态
func (r *RedisProgressStore) MarkSlotStatus(ctx context.Context, slot uint64, status SlotStatus) error {
	if err := r.rdb.Set(ctx, r.key(slot), int(status), r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

// MarkSlotProcessed 标记 slot 为已处理
func (r *RedisProgressStore) MarkSlotProcessed(ctx context.Context, slot uint64) error {
	return r.MarkSlotStatus(ctx, slot, SlotProcessed)
}

// MarkSlotInvalid 标记 slot 为无效（部分记录发送失败）
func (r *RedisProgressStore) MarkSlotInvalid(ctx context.Context, slot uint64) error {
	return r.MarkSlotStatus(ctx, slot, SlotInvalid)
}

// MarkSlotPending 标记 slot 为正在处理
func (r *RedisProgressStore) MarkSlotPending(ctx context.Context, slot uint64) error {
	return r.MarkSlotStatus(ctx, slot, SlotPending)
}
