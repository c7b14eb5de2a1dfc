package usecase

import (
	"context"
	"fmt"

	"shoppingmall/internal/domain/model"
	repo "shoppingmall/internal/repository"
)

// CartUsecase は /goods/cart の業務ロジックです。
type CartUsecase struct {
	cartRepo  repo.CartRepository
	goodsRepo repo.GoodsRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	goodsRepo repo.GoodsRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:  cartRepo,
		goodsRepo: goodsRepo,
	}
}

// 商品が見つからない行はgoodsを省略して返す（エラーにしない）
type CartItemView struct {
	Quantity int64        `json:"quantity"`
	Goods    *model.Goods `json:"goods,omitempty"`
}

type CartListOutput struct {
	Cart []CartItemView `json:"cart"`
}

// 成功時のボディは使われないので空
type EmptyOutput struct{}

type PutCartInput struct {
	GoodsID  string
	Quantity int64
}

// カート一覧。商品は1回のクエリでまとめて取って突き合わせる
func (u *CartUsecase) ListCart(ctx context.Context, userID int64) (CartListOutput, error) {
	items, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartListOutput{}, fmt.Errorf("list cart of user %d: %w", userID, err)
	}

	goodsIDs := make([]string, 0, len(items))
	for _, it := range items {
		goodsIDs = append(goodsIDs, it.GoodsID)
	}

	goods, err := u.goodsRepo.FindByIDs(ctx, goodsIDs)
	if err != nil {
		return CartListOutput{}, fmt.Errorf("find cart goods: %w", err)
	}

	goodsByID := make(map[string]model.Goods, len(goods))
	for _, g := range goods {
		goodsByID[g.GoodsID] = g
	}

	out := CartListOutput{Cart: make([]CartItemView, 0, len(items))}
	for _, it := range items {
		view := CartItemView{Quantity: it.Quantity}
		if g, ok := goodsByID[it.GoodsID]; ok {
			view.Goods = &g
		}
		out.Cart = append(out.Cart, view)
	}
	return out, nil
}

// 数量をそのまま上書き。商品の存在も数量も確認しない
func (u *CartUsecase) PutCart(ctx context.Context, userID int64, in PutCartInput) (EmptyOutput, error) {
	err := u.cartRepo.Upsert(ctx, model.Cart{
		UserID:   userID,
		GoodsID:  in.GoodsID,
		Quantity: in.Quantity,
	})
	if err != nil {
		return EmptyOutput{}, fmt.Errorf("upsert cart (%d, %q): %w", userID, in.GoodsID, err)
	}
	return EmptyOutput{}, nil
}

// 無くても成功
func (u *CartUsecase) DeleteCart(ctx context.Context, userID int64, goodsID string) (EmptyOutput, error) {
	if err := u.cartRepo.Delete(ctx, userID, goodsID); err != nil {
		return EmptyOutput{}, fmt.Errorf("delete cart (%d, %q): %w", userID, goodsID, err)
	}
	return EmptyOutput{}, nil
}
