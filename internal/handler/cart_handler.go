package handler

import (
	"net/http"

	"shoppingmall/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /goods/cart のHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type PutCartRequest struct {
	Quantity int64 `json:"quantity"`
}

// /goods/cart は静的ルートなので /goods/:goodsId より優先される
func (h *CartHandler) RegisterRoutes(e *echo.Echo, auth []echo.MiddlewareFunc) {
	e.GET("/goods/cart", h.getCart, auth...)
	e.PUT("/goods/:goodsId/cart", h.putCart, auth...)
	e.DELETE("/goods/:goodsId/cart", h.deleteCart, auth...)
}

func (h *CartHandler) getCart(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("login required"))
	}

	out, err := h.uc.ListCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) putCart(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("login required"))
	}

	var req PutCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid body"))
	}

	out, err := h.uc.PutCart(c.Request().Context(), userID, usecase.PutCartInput{
		GoodsID:  c.Param("goodsId"),
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deleteCart(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("login required"))
	}

	out, err := h.uc.DeleteCart(c.Request().Context(), userID, c.Param("goodsId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
