package repository

import (
	"context"
	"time"

	"shoppingmall/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// ユーザーのカートを挿入順で取得
func (r *CartGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Cart, error) {
	items := []model.Cart{}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.Cart{}, err
	}

	return items, nil
}

// 無ければ作成、あれば数量を上書き（加算しない）
// 1文のINSERT ... ON CONFLICTなので同時に来ても後勝ち
func (r *CartGormRepository) Upsert(ctx context.Context, c model.Cart) error {
	c.ID = 0

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "goods_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   c.Quantity,
				"updated_at": time.Now(),
			}),
		}).
		Create(&c).Error
}

// あれば削除。0件でもエラーにしない
func (r *CartGormRepository) Delete(ctx context.Context, userID int64, goodsID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND goods_id = ?", userID, goodsID).
		Delete(&model.Cart{}).Error
}
