package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shoppingmall/internal/repository"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

// handlerがJSONにして返す
type LoginOutput struct {
	Token string `json:"token"`
}

// メールまたはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid email or password")

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(userID int64, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   AccessTokenIssuer
	clock    Clock
}

func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	user, err := u.userRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return LoginOutput{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginOutput{}, fmt.Errorf("find user: %w", err)
	}

	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return LoginOutput{}, ErrInvalidCredentials
	}

	token, _, err := u.issuer.Issue(user.UserID, u.clock.Now())
	if err != nil {
		return LoginOutput{}, fmt.Errorf("issue token: %w", err)
	}
	return LoginOutput{Token: token}, nil
}
