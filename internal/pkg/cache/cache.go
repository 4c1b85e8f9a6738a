package cache

import (
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

// QueryCache 以 JSON 形式缓存查询结果，写操作通过失效表删除过期键。
// 单键的整体写入/删除保证读方要么看到旧结果、要么看到新结果，不会看到混合状态。
type QueryCache struct {
	store      Store
	expiration time.Duration
}

func NewQueryCache(store Store, expiration time.Duration) *QueryCache {
	return &QueryCache{
		store:      store,
		expiration: expiration,
	}
}

// Get 命中时将缓存值反序列化到 dest 并返回 true，未命中或出错返回 false
func (c *QueryCache) Get(ctx context.Context, key string, dest interface{}) bool {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "cache get failed, falling back to store", "key", key, "err", err)
		return false
	}
	if !ok {
		return false
	}
	if err = json.Unmarshal([]byte(raw), dest); err != nil {
		log.WarnContext(ctx, "cache entry corrupted, dropping", "key", key, "err", err)
		_ = c.store.Delete(ctx, key)
		return false
	}
	return true
}

// Set 缓存失败不影响调用方，只降级为下次重新查询
func (c *QueryCache) Set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.WarnContext(ctx, "cache marshal failed", "key", key, "err", err)
		return
	}
	if err = c.store.Set(ctx, key, string(raw), c.expiration); err != nil {
		log.WarnContext(ctx, "cache set failed", "key", key, "err", err)
	}
}

// Invalidate 按失效表删除一次写操作涉及的全部缓存键
func (c *QueryCache) Invalidate(ctx context.Context, m Mutation, storyID string) {
	keys := KeysFor(m, storyID)
	if len(keys) == 0 {
		return
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		log.ErrorContext(ctx, "cache invalidate failed", "keys", keys, "err", err)
	}
}
