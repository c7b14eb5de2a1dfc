package cache

import (
	"context"
	"errors"
	"log/slog"

	"shoppingmall/internal/domain/model"
	repo "shoppingmall/internal/repository"
)

// GoodsRepositoryのFindByIDだけをRedisで包む
// Redisが落ちていてもDBから返す
type CachedGoodsRepository struct {
	next  repo.GoodsRepository
	cache *RedisGoodsCache
	log   *slog.Logger
}

func NewCachedGoodsRepository(next repo.GoodsRepository, cache *RedisGoodsCache, log *slog.Logger) *CachedGoodsRepository {
	return &CachedGoodsRepository{
		next:  next,
		cache: cache,
		log:   log,
	}
}

var _ repo.GoodsRepository = (*CachedGoodsRepository)(nil)

func (r *CachedGoodsRepository) List(ctx context.Context, f repo.GoodsFilter) ([]model.Goods, error) {
	return r.next.List(ctx, f)
}

func (r *CachedGoodsRepository) FindByIDs(ctx context.Context, goodsIDs []string) ([]model.Goods, error) {
	return r.next.FindByIDs(ctx, goodsIDs)
}

func (r *CachedGoodsRepository) FindByID(ctx context.Context, goodsID string) (model.Goods, error) {
	g, err := r.cache.Get(ctx, goodsID)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.log.WarnContext(ctx, "goods cache get failed", "goodsId", goodsID, "error", err)
	}

	g, err = r.next.FindByID(ctx, goodsID)
	if err != nil {
		return model.Goods{}, err
	}

	r.store(ctx, g)
	return g, nil
}

func (r *CachedGoodsRepository) Create(ctx context.Context, g model.Goods) (model.Goods, error) {
	created, err := r.next.Create(ctx, g)
	if err != nil {
		return model.Goods{}, err
	}

	r.store(ctx, created)
	return created, nil
}

func (r *CachedGoodsRepository) store(ctx context.Context, g model.Goods) {
	if err := r.cache.Set(ctx, g); err != nil {
		r.log.WarnContext(ctx, "goods cache set failed", "goodsId", g.GoodsID, "error", err)
	}
}
