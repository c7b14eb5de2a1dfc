package handler

import (
	"net/http"

	"shoppingmall/internal/usecase"

	"github.com/labstack/echo/v4"
)

type RegisterGoodsRequest struct {
	GoodsID      string `json:"goodsId"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Category     string `json:"category"`
	Price        int64  `json:"price"`
}

// /goods のAPI
type GoodsHandler struct {
	uc *usecase.GoodsUsecase
}

// DI
func NewGoodsHandler(uc *usecase.GoodsUsecase) *GoodsHandler {
	return &GoodsHandler{uc: uc}
}

// 商品のルートを登録（全てログイン必須）
func (h *GoodsHandler) RegisterRoutes(e *echo.Echo, auth []echo.MiddlewareFunc) {
	e.GET("/goods", h.list, auth...)
	e.GET("/goods/:goodsId", h.detail, auth...)
	e.POST("/goods", h.register, auth...)
}

// ?category=drink で完全一致の絞り込み
func (h *GoodsHandler) list(c echo.Context) error {
	out, err := h.uc.ListGoods(c.Request().Context(), usecase.ListGoodsInput{
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *GoodsHandler) detail(c echo.Context) error {
	out, err := h.uc.GetGoods(c.Request().Context(), c.Param("goodsId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *GoodsHandler) register(c echo.Context) error {
	var req RegisterGoodsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid body"))
	}

	out, err := h.uc.RegisterGoods(c.Request().Context(), usecase.RegisterGoodsInput{
		GoodsID:      req.GoodsID,
		Name:         req.Name,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		Price:        req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
