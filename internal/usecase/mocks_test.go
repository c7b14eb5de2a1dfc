package usecase_test

import (
	"context"

	"shoppingmall/internal/domain/model"
	repo "shoppingmall/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type GoodsRepoMock struct{ mock.Mock }

func (m *GoodsRepoMock) List(ctx context.Context, f repo.GoodsFilter) ([]model.Goods, error) {
	args := m.Called(ctx, f)
	gs, _ := args.Get(0).([]model.Goods)
	return gs, args.Error(1)
}

func (m *GoodsRepoMock) FindByID(ctx context.Context, goodsID string) (model.Goods, error) {
	args := m.Called(ctx, goodsID)
	g, _ := args.Get(0).(model.Goods)
	return g, args.Error(1)
}

func (m *GoodsRepoMock) FindByIDs(ctx context.Context, goodsIDs []string) ([]model.Goods, error) {
	args := m.Called(ctx, goodsIDs)
	gs, _ := args.Get(0).([]model.Goods)
	return gs, args.Error(1)
}

func (m *GoodsRepoMock) Create(ctx context.Context, g model.Goods) (model.Goods, error) {
	args := m.Called(ctx, g)
	created, _ := args.Get(0).(model.Goods)
	return created, args.Error(1)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Cart, error) {
	args := m.Called(ctx, userID)
	cs, _ := args.Get(0).([]model.Cart)
	return cs, args.Error(1)
}

func (m *CartRepoMock) Upsert(ctx context.Context, c model.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CartRepoMock) Delete(ctx context.Context, userID int64, goodsID string) error {
	args := m.Called(ctx, userID, goodsID)
	return args.Error(0)
}

var (
	_ repo.GoodsRepository = (*GoodsRepoMock)(nil)
	_ repo.CartRepository  = (*CartRepoMock)(nil)
)
