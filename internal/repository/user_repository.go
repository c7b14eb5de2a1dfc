package repository

import (
	"context"

	"shoppingmall/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// 会員登録の重複チェック用
	FindByEmailOrNickname(ctx context.Context, email string, nickname string) (*model.User, error)
}
