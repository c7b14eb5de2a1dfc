package cache

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"shoppingmall/internal/domain/model"
	repo "shoppingmall/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type GoodsRepoMock struct{ mock.Mock }

func (m *GoodsRepoMock) List(ctx context.Context, f repo.GoodsFilter) ([]model.Goods, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Goods)
	return items, args.Error(1)
}

func (m *GoodsRepoMock) FindByID(ctx context.Context, goodsID string) (model.Goods, error) {
	args := m.Called(ctx, goodsID)
	g, _ := args.Get(0).(model.Goods)
	return g, args.Error(1)
}

func (m *GoodsRepoMock) FindByIDs(ctx context.Context, goodsIDs []string) ([]model.Goods, error) {
	args := m.Called(ctx, goodsIDs)
	items, _ := args.Get(0).([]model.Goods)
	return items, args.Error(1)
}

func (m *GoodsRepoMock) Create(ctx context.Context, g model.Goods) (model.Goods, error) {
	args := m.Called(ctx, g)
	created, _ := args.Get(0).(model.Goods)
	return created, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// 2回目はRedisから返るのでDBは1回だけ
func TestCachedGoodsRepository_FindByID_ReadThrough(t *testing.T) {
	c, _ := setupTestRedis(t)
	next := new(GoodsRepoMock)
	r := NewCachedGoodsRepository(next, c, discardLogger())
	ctx := context.Background()

	next.On("FindByID", mock.Anything, "g1").Return(model.Goods{GoodsID: "g1", Name: "Cola"}, nil).Once()

	first, err := r.FindByID(ctx, "g1")
	require.NoError(t, err)
	second, err := r.FindByID(ctx, "g1")
	require.NoError(t, err)

	assert.Equal(t, "Cola", first.Name)
	assert.Equal(t, "Cola", second.Name)
	next.AssertNumberOfCalls(t, "FindByID", 1)
}

// NotFoundはキャッシュしない
func TestCachedGoodsRepository_FindByID_NotFoundPassesThrough(t *testing.T) {
	c, mr := setupTestRedis(t)
	next := new(GoodsRepoMock)
	r := NewCachedGoodsRepository(next, c, discardLogger())

	next.On("FindByID", mock.Anything, "ghost").Return(model.Goods{}, repo.ErrNotFound)

	_, err := r.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.False(t, mr.Exists("goods:ghost"))
}

// Redisが落ちていてもDBから返す
func TestCachedGoodsRepository_FindByID_RedisDown(t *testing.T) {
	c, mr := setupTestRedis(t)
	mr.Close()

	next := new(GoodsRepoMock)
	r := NewCachedGoodsRepository(next, c, discardLogger())
	next.On("FindByID", mock.Anything, "g1").Return(model.Goods{GoodsID: "g1", Name: "Cola"}, nil)

	g, err := r.FindByID(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "Cola", g.Name)
}

// 作成した商品はそのままキャッシュに入る
func TestCachedGoodsRepository_Create_WarmsCache(t *testing.T) {
	c, mr := setupTestRedis(t)
	next := new(GoodsRepoMock)
	r := NewCachedGoodsRepository(next, c, discardLogger())
	ctx := context.Background()

	g := model.Goods{GoodsID: "g1", Name: "Cola"}
	next.On("Create", mock.Anything, g).Return(g, nil)

	_, err := r.Create(ctx, g)
	require.NoError(t, err)
	assert.True(t, mr.Exists("goods:g1"))

	got, err := r.FindByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Cola", got.Name)
	next.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCachedGoodsRepository_ListDelegates(t *testing.T) {
	c, _ := setupTestRedis(t)
	next := new(GoodsRepoMock)
	r := NewCachedGoodsRepository(next, c, discardLogger())

	next.On("List", mock.Anything, repo.GoodsFilter{Category: "drink"}).Return([]model.Goods{{GoodsID: "g1"}}, nil)
	next.On("FindByIDs", mock.Anything, []string{"g1"}).Return([]model.Goods{{GoodsID: "g1"}}, nil)

	list, err := r.List(context.Background(), repo.GoodsFilter{Category: "drink"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	byIDs, err := r.FindByIDs(context.Background(), []string{"g1"})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)

	next.AssertExpectations(t)
}
