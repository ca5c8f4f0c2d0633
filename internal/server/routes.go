package server

import (
	"github.com/tsizion/DokaBackend/internal/handler"

	"github.com/labstack/echo/v4"
)

// /api/v1 にぶら下げるhandler一式
type Handlers struct {
	Guards handler.Guards

	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Admins       *handler.AdminHandler
	DeletedUsers *handler.DeletedUserHandler
	Categories   *handler.CategoryHandler
	Products     *handler.ProductHandler
	Carts        *handler.CartHandler
	Orders       *handler.OrderHandler
	Deliveries   *handler.DeliveryHandler
}

func registerRoutes(api *echo.Group, h Handlers) {
	h.Auth.RegisterRoutes(api)
	h.Users.RegisterRoutes(api, h.Guards)
	h.Admins.RegisterRoutes(api, h.Guards)
	h.DeletedUsers.RegisterRoutes(api, h.Guards)
	h.Categories.RegisterRoutes(api, h.Guards)
	h.Products.RegisterRoutes(api, h.Guards)
	h.Carts.RegisterRoutes(api, h.Guards)
	h.Orders.RegisterRoutes(api, h.Guards)
	h.Deliveries.RegisterRoutes(api, h.Guards)
}
