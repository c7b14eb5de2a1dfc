package handler

import (
	"net/http"

	"shoppingmall/internal/middleware"
	"shoppingmall/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage"`
}

// 404や成功時の空ボディ {}
type EmptyResponse struct{}

func errorBody(msg string) ErrorResponse {
	return ErrorResponse{Success: false, ErrorMessage: msg}
}

// 業務エラーだけ整形する。それ以外はechoのエラーハンドラへそのまま返す
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	he, ok := usecase.AsHTTPError(err)
	if !ok {
		return err
	}

	//404は空ボディ
	if he.Status == http.StatusNotFound {
		return c.JSON(http.StatusNotFound, EmptyResponse{})
	}
	return c.JSON(he.Status, errorBody(he.Message))
}

//middleware.AuthJWT が c.Set("user_id", int64) した値を取り出す

func getUserIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}
