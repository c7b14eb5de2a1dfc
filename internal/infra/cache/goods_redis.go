package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shoppingmall/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// 商品1件のキャッシュ。商品は登録後に変わらないのでTTLだけで失効させる
type RedisGoodsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGoodsCache(client *redis.Client, ttl time.Duration) *RedisGoodsCache {
	return &RedisGoodsCache{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisGoodsCache) Get(ctx context.Context, goodsID string) (model.Goods, error) {
	data, err := r.client.Get(ctx, cacheKey(goodsID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Goods{}, ErrCacheMiss
	}
	if err != nil {
		return model.Goods{}, fmt.Errorf("redis get failed: %w", err)
	}

	var g model.Goods
	if err := json.Unmarshal(data, &g); err != nil {
		return model.Goods{}, fmt.Errorf("unmarshal goods failed: %w", err)
	}
	return g, nil
}

func (r *RedisGoodsCache) Set(ctx context.Context, g model.Goods) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal goods failed: %w", err)
	}

	if err := r.client.Set(ctx, cacheKey(g.GoodsID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cacheKey(goodsID string) string {
	return fmt.Sprintf("goods:%s", goodsID)
}
