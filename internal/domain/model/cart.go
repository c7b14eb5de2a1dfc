package model

import "time"

// カートの1行。(user_id, goods_id)で1行だけ
// idは挿入順を保つための連番
type Cart struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_carts_user_goods,priority:1" json:"userId"`
	GoodsID   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_carts_user_goods,priority:2" json:"goodsId"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (Cart) TableName() string {
	return "carts"
}
