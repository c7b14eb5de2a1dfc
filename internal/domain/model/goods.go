package model

import "time"

// 商品。goodsIdは登録時に呼び出し側が決める（自動採番しない）
type Goods struct {
	GoodsID      string    `gorm:"primaryKey;type:varchar(64)" json:"goodsId"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	ThumbnailURL string    `gorm:"type:text" json:"thumbnailUrl"`
	Category     string    `gorm:"type:varchar(100);index" json:"category"`
	Price        int64     `gorm:"not null" json:"price"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (Goods) TableName() string {
	return "goods"
}
