package repository

import (
	"context"
	"errors"

	"shoppingmall/internal/domain/model"
	domainrepo "shoppingmall/internal/repository"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseとmiddlewareに注入します。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

// Create はユーザーを新規作成
func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainrepo.ErrDuplicate
		}
		return err
	}
	return nil
}

// IDでユーザーを1件取得
func (r *userGormRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return r.first(ctx, "user_id = ?", id)
}

// emailでユーザーを1件取得
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userGormRepository) FindByEmailOrNickname(ctx context.Context, email string, nickname string) (*model.User, error) {
	return r.first(ctx, "email = ? OR nickname = ?", email, nickname)
}

func (r *userGormRepository) first(ctx context.Context, query string, args ...interface{}) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where(query, args...).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainrepo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
