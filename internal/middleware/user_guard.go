package middleware

import (
	"net/http"

	"shoppingmall/internal/repository"

	"github.com/labstack/echo/v4"
)

// トークンのユーザーがDBに存在するか確認し、contextにuserを入れる
// AuthJWTの後ろに置く
func UserGuard(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//AuthJWTが入れたuser_id を取得する
			userID, ok := c.Get(CtxUserIDKey).(int64)
			if !ok || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgLoginRequired))
			}

			//DBから最新のuserを取得する（退会済みなどは401）
			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil || user == nil {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgLoginRequired))
			}

			c.Set(CtxUserKey, user)
			return next(c)
		}
	}
}

// AuthJWT + UserGuard
func Authenticated(verifier TokenVerifier, userRepo repository.UserRepository) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{AuthJWT(verifier), UserGuard(userRepo)}
}
