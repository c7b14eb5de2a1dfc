package repository

import (
	"context"

	"shoppingmall/internal/domain/model"
)

type CartRepository interface {
	// 挿入順
	ListByUserID(ctx context.Context, userID int64) ([]model.Cart, error)
	// 同一(user, goods)は数量を上書き
	Upsert(ctx context.Context, c model.Cart) error
	// 無くてもエラーにしない
	Delete(ctx context.Context, userID int64, goodsID string) error
}
