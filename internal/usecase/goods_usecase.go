package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"shoppingmall/internal/domain/model"
	repo "shoppingmall/internal/repository"
)

const msgGoodsAlreadyExists = "goods already exists"

type GoodsUsecase struct {
	goodsRepo repo.GoodsRepository
}

// DI
func NewGoodsUsecase(goodsRepo repo.GoodsRepository) *GoodsUsecase {
	return &GoodsUsecase{goodsRepo: goodsRepo}
}

// GET /goodsの入力。Categoryが空なら全件
type ListGoodsInput struct {
	Category string
}

type GoodsListOutput struct {
	Goods []model.Goods `json:"goods"`
}

type GoodsOutput struct {
	Goods model.Goods `json:"goods"`
}

// POST /goodsの入力。項目ごとの検証はしない
type RegisterGoodsInput struct {
	GoodsID      string
	Name         string
	ThumbnailURL string
	Category     string
	Price        int64
}

func (u *GoodsUsecase) ListGoods(ctx context.Context, in ListGoodsInput) (GoodsListOutput, error) {
	goods, err := u.goodsRepo.List(ctx, repo.GoodsFilter{Category: in.Category})
	if err != nil {
		return GoodsListOutput{}, fmt.Errorf("list goods: %w", err)
	}
	return GoodsListOutput{Goods: goods}, nil
}

func (u *GoodsUsecase) GetGoods(ctx context.Context, goodsID string) (GoodsOutput, error) {
	g, err := u.goodsRepo.FindByID(ctx, goodsID)
	if errors.Is(err, repo.ErrNotFound) {
		return GoodsOutput{}, NewHTTPError(http.StatusNotFound, "goods not found")
	}
	if err != nil {
		return GoodsOutput{}, fmt.Errorf("find goods %q: %w", goodsID, err)
	}
	return GoodsOutput{Goods: g}, nil
}

// 同じgoodsIdがあれば400、なければ作成
func (u *GoodsUsecase) RegisterGoods(ctx context.Context, in RegisterGoodsInput) (GoodsOutput, error) {
	_, err := u.goodsRepo.FindByID(ctx, in.GoodsID)
	if err == nil {
		return GoodsOutput{}, NewHTTPError(http.StatusBadRequest, msgGoodsAlreadyExists)
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return GoodsOutput{}, fmt.Errorf("find goods %q: %w", in.GoodsID, err)
	}

	created, err := u.goodsRepo.Create(ctx, model.Goods{
		GoodsID:      in.GoodsID,
		Name:         in.Name,
		ThumbnailURL: in.ThumbnailURL,
		Category:     in.Category,
		Price:        in.Price,
	})
	// 確認と作成の間に同じIDが入った場合
	if errors.Is(err, repo.ErrDuplicate) {
		return GoodsOutput{}, NewHTTPError(http.StatusBadRequest, msgGoodsAlreadyExists)
	}
	if err != nil {
		return GoodsOutput{}, fmt.Errorf("create goods %q: %w", in.GoodsID, err)
	}
	return GoodsOutput{Goods: created}, nil
}
