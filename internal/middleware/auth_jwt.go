package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey = "user_id" // int64
	CtxUserKey   = "user"    // *model.User
)

const msgLoginRequired = "login required"

// トークンからuserIdを取り出す約束
type TokenVerifier interface {
	Verify(raw string) (int64, error)
}

// bearerAuth用のJWT検証ミドルウェア。
func AuthJWT(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgLoginRequired))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgLoginRequired))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgLoginRequired))
			}

			userID, err := verifier.Verify(rawToken)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgLoginRequired))
			}

			c.Set(CtxUserIDKey, userID)
			return next(c)
		}
	}
}

type errorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Success: false, ErrorMessage: msg}
}
