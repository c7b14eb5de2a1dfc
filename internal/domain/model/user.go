package model

import "time"

type User struct {
	UserID       int64     `gorm:"primaryKey;autoIncrement" json:"userId"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Nickname     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"nickname"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
