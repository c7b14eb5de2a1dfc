package handler

import (
	"errors"
	"net/http"

	"shoppingmall/internal/domain/model"
	"shoppingmall/internal/middleware"
	auth "shoppingmall/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	signupUC *auth.SignupUsecase // 会員登録usecase
	loginUC  *auth.LoginUsecase  // ログインusecase
}

// DIコンストラクタ
func NewAuthHandler(signupUC *auth.SignupUsecase, loginUC *auth.LoginUsecase) *AuthHandler {
	return &AuthHandler{
		signupUC: signupUC,
		loginUC:  loginUC,
	}
}

// POST /users のリクエストボディ。
type signupRequest struct {
	Email           string `json:"email"`
	Nickname        string `json:"nickname"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// POST /auth のリクエストボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type meResponse struct {
	User *model.User `json:"user"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, authMW []echo.MiddlewareFunc) {
	e.POST("/users", h.signup)
	e.POST("/auth", h.login)
	e.GET("/users/me", h.me, authMW...)
}

func (h *AuthHandler) signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid body"))
	}

	err := h.signupUC.Execute(c.Request().Context(), auth.SignupInput{
		Email:           req.Email,
		Nickname:        req.Nickname,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		if auth.IsValidationError(err) {
			return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		}
		return err
	}

	return c.JSON(http.StatusCreated, EmptyResponse{})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid body"))
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		}
		return err
	}

	return c.JSON(http.StatusOK, out)
}

// UserGuardが入れたuserを返すだけ
func (h *AuthHandler) me(c echo.Context) error {
	user, ok := c.Get(middleware.CtxUserKey).(*model.User)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, errorBody("login required"))
	}

	return c.JSON(http.StatusOK, meResponse{User: user})
}
