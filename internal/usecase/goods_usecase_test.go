package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"shoppingmall/internal/domain/model"
	repo "shoppingmall/internal/repository"
	"shoppingmall/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cola() model.Goods {
	return model.Goods{
		GoodsID:      "g1",
		Name:         "Cola",
		ThumbnailURL: "http://img/cola.png",
		Category:     "drink",
		Price:        1500,
	}
}

// =====================
// ListGoods
// =====================

func TestGoodsUsecase_ListGoods_PassesCategory(t *testing.T) {
	ctx := context.Background()
	goodsRepo := new(GoodsRepoMock)
	uc := usecase.NewGoodsUsecase(goodsRepo)

	goodsRepo.On("List", ctx, repo.GoodsFilter{Category: "drink"}).
		Return([]model.Goods{cola()}, nil).Once()

	out, err := uc.ListGoods(ctx, usecase.ListGoodsInput{Category: "drink"})
	require.NoError(t, err)
	assert.Equal(t, []model.Goods{cola()}, out.Goods)

	goodsRepo.AssertExpectations(t)
}

func TestGoodsUsecase_ListGoods_StoreError(t *testing.T) {
	ctx := context.Background()
	goodsRepo := new(GoodsRepoMock)
	uc := usecase.NewGoodsUsecase(goodsRepo)

	dbErr := errors.New("db down")
	goodsRepo.On("List", ctx, repo.GoodsFilter{}).Return(nil, dbErr).Once()

	_, err := uc.ListGoods(ctx, usecase.ListGoodsInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)

	_, isHTTP := usecase.AsHTTPError(err)
	assert.False(t, isHTTP)
}

// =====================
// GetGoods
// =====================

func TestGoodsUsecase_GetGoods_Found(t *testing.T) {
	ctx := context.Background()
	goodsRepo := new(GoodsRepoMock)
	uc := usecase.NewGoodsUsecase(goodsRepo)

	goodsRepo.On("FindByID", ctx, "g1").Return(cola(), nil).Once()

	out, err := uc.GetGoods(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, cola(), out.Goods)
}

func TestGoodsUsecase_GetGoods_NotFound(t *testing.T) {
	ctx := context.Background()
	goodsRepo := new(GoodsRepoMock)
	uc := usecase.NewGoodsUsecase(goodsRepo)

	goodsRepo.On("FindByID", ctx, "nope").Return(model.Goods{}, repo.ErrNotFound).Once()

	_, err := uc.GetGoods(ctx, "nope")
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

// =====================
// RegisterGoods
// =====================

func TestGoodsUsecase_RegisterGoods_Created(t *testing.T) {
	ctx := context.Background()
	goodsRepo := new(GoodsRepoMock)
	uc := usecase.NewGoodsUsecase(goodsRepo)

	goodsRepo.On("FindByID", ctx, "g1").Return(model.Goods{}, repo.ErrNotFound).Once()
	goodsRepo.On("Create", ctx, cola()).Return(cola(), nil).Once()

	out, err := uc.RegisterGoods(ctx, usecase.RegisterGoodsInput{
		GoodsID:      "g1",
		Name:         "Cola",
		ThumbnailURL: "http://img/cola.png",
		Category:     "drink",
		Price:        1500,
	})
	require.NoError(t, err)
	assert.Equal(t, cola(), out.Goods)

	goodsRepo.AssertExpectations(t)
}

func TestGoodsUsecase_RegisterGoods_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	goodsRepo := new(GoodsRepoMock)
	uc := usecase.NewGoodsUsecase(goodsRepo)

	goodsRepo.On("FindByID", ctx, "g1").Return(cola(), nil).Once()

	_, err := uc.RegisterGoods(ctx, usecase.RegisterGoodsInput{GoodsID: "g1", Name: "Other"})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "goods already exists", he.Message)

	goodsRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 確認後に別リクエストが同じIDを作った場合も400
func TestGoodsUsecase_RegisterGoods_DuplicateOnInsert(t *testing.T) {
	ctx := context.Background()
	goodsRepo := new(GoodsRepoMock)
	uc := usecase.NewGoodsUsecase(goodsRepo)

	goodsRepo.On("FindByID", ctx, "g1").Return(model.Goods{}, repo.ErrNotFound).Once()
	goodsRepo.On("Create", ctx, mock.AnythingOfType("model.Goods")).
		Return(model.Goods{}, repo.ErrDuplicate).Once()

	_, err := uc.RegisterGoods(ctx, usecase.RegisterGoodsInput{GoodsID: "g1"})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestGoodsUsecase_RegisterGoods_LookupError(t *testing.T) {
	ctx := context.Background()
	goodsRepo := new(GoodsRepoMock)
	uc := usecase.NewGoodsUsecase(goodsRepo)

	dbErr := errors.New("timeout")
	goodsRepo.On("FindByID", ctx, "g1").Return(model.Goods{}, dbErr).Once()

	_, err := uc.RegisterGoods(ctx, usecase.RegisterGoodsInput{GoodsID: "g1"})
	assert.ErrorIs(t, err, dbErr)
	goodsRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
