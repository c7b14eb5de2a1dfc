package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"shoppingmall/internal/domain/model"
	"shoppingmall/internal/repository"
)

// 会員登録の入力
type SignupInput struct {
	Email           string
	Nickname        string
	Password        string
	ConfirmPassword string
}

var (
	// 入力が不正
	ErrPasswordMismatch         = errors.New("password and confirmPassword do not match")
	ErrInvalidEmailFormat       = errors.New("invalid email format")
	ErrInvalidNickname          = errors.New("nickname must be at least 3 alphanumeric characters")
	ErrPasswordTooShort         = errors.New("password must be at least 4 characters")
	ErrPasswordContainsNickname = errors.New("password must not contain the nickname")

	// 競合
	ErrUserAlreadyExists = errors.New("email or nickname already in use")
)

var nicknamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// SignupUsecaseは会員登録の処理。
type SignupUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
}

// DI
func NewSignupUsecase(userRepo repository.UserRepository, hasher PasswordHasher) *SignupUsecase {
	return &SignupUsecase{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// 会員登録実行
func (u *SignupUsecase) Execute(ctx context.Context, in SignupInput) error {
	email := strings.TrimSpace(in.Email)

	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !isValidEmailFormat(email) {
		return ErrInvalidEmailFormat
	}
	if !nicknamePattern.MatchString(in.Nickname) {
		return ErrInvalidNickname
	}
	if len(in.Password) < 4 {
		return ErrPasswordTooShort
	}
	if strings.Contains(in.Password, in.Nickname) {
		return ErrPasswordContainsNickname
	}

	// email / nickname重複チェック
	_, err := u.userRepo.FindByEmailOrNickname(ctx, email, in.Nickname)
	if err == nil {
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("find user: %w", err)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Nickname:     in.Nickname,
		PasswordHash: hashed, // 平文は保存しない
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// 入力エラー（400）かどうか
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrInvalidEmailFormat),
		errors.Is(err, ErrInvalidNickname),
		errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, ErrPasswordContainsNickname),
		errors.Is(err, ErrUserAlreadyExists):
		return true
	default:
		return false
	}
}

// メールチェック
func isValidEmailFormat(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	// "Name <a@b>"形式は受け付けない
	return err == nil && addr.Address == email
}
