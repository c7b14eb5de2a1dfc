package repository

import (
	"context"
	"errors"

	"shoppingmall/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")
	// 一意制約違反
	ErrDuplicate = errors.New("duplicate")
)

// 一覧検索。Categoryが空なら絞り込みなし
type GoodsFilter struct {
	Category string
}

// 商品の永続化（保存・取得）だけを約束。
type GoodsRepository interface {
	// goods_id降順
	List(ctx context.Context, f GoodsFilter) ([]model.Goods, error)
	FindByID(ctx context.Context, goodsID string) (model.Goods, error)
	// 見つからないIDは結果に含まれないだけ
	FindByIDs(ctx context.Context, goodsIDs []string) ([]model.Goods, error)
	Create(ctx context.Context, g model.Goods) (model.Goods, error)
}
