package repository

import (
	"context"
	"errors"

	"shoppingmall/internal/domain/model"
	repo "shoppingmall/internal/repository"

	"gorm.io/gorm"
)

type GoodsGormRepository struct {
	db *gorm.DB
}

// DI
func NewGoodsGormRepository(db *gorm.DB) *GoodsGormRepository {
	return &GoodsGormRepository{db: db}
}

// 全件をgoods_id降順で返す。ページングはしない
func (r *GoodsGormRepository) List(ctx context.Context, f repo.GoodsFilter) ([]model.Goods, error) {
	goods := []model.Goods{}

	tx := r.db.WithContext(ctx).Model(&model.Goods{})
	if f.Category != "" {
		tx = tx.Where("category = ?", f.Category)
	}

	if err := tx.Order("goods_id desc").Find(&goods).Error; err != nil {
		return []model.Goods{}, err
	}
	return goods, nil
}

// IDで商品を取得
func (r *GoodsGormRepository) FindByID(ctx context.Context, goodsID string) (model.Goods, error) {
	var g model.Goods
	err := r.db.WithContext(ctx).Where("goods_id = ?", goodsID).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Goods{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Goods{}, err
	}
	return g, nil
}

// まとめて取得（カート一覧でN+1を避ける）
func (r *GoodsGormRepository) FindByIDs(ctx context.Context, goodsIDs []string) ([]model.Goods, error) {
	goods := []model.Goods{}
	if len(goodsIDs) == 0 {
		return goods, nil
	}

	if err := r.db.WithContext(ctx).Where("goods_id IN ?", goodsIDs).Find(&goods).Error; err != nil {
		return []model.Goods{}, err
	}
	return goods, nil
}

// 商品の作成
func (r *GoodsGormRepository) Create(ctx context.Context, g model.Goods) (model.Goods, error) {
	if err := r.db.WithContext(ctx).Create(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Goods{}, repo.ErrDuplicate
		}
		return model.Goods{}, err
	}
	return g, nil
}
