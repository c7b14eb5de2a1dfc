package server

import (
	"shoppingmall/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health *handler.HealthHandler
	Auth   *handler.AuthHandler
	Goods  *handler.GoodsHandler
	Cart   *handler.CartHandler
}

// authはAuthJWT+UserGuard。/goods系と/users/meに付ける
func RegisterRoutes(e *echo.Echo, h Handlers, auth []echo.MiddlewareFunc) {
	h.Health.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e, auth)
	h.Goods.RegisterRoutes(e, auth)
	h.Cart.RegisterRoutes(e, auth)
}
