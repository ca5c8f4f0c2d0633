package handler

import (
	"net/http"

	"github.com/tsizion/DokaBackend/internal/middleware"
	"github.com/tsizion/DokaBackend/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type cartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

type cartItemsRequest struct {
	Products []cartItemRequest `json:"products" validate:"required,min=1,dive"`
}

func (r cartItemsRequest) input() []usecase.CartItemInput {
	in := make([]usecase.CartItemInput, 0, len(r.Products))
	for _, p := range r.Products {
		in = append(in, usecase.CartItemInput{ProductID: p.ProductID, Quantity: p.Quantity})
	}
	return in
}

type removeFromCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// 既存のパス名（AddToCart など）はそのまま
func (h *CartHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/cart")

	g.POST("/AddToCart", h.addToCart, guards.User...)
	g.POST("/RemoveFromCart", h.removeFromCart, guards.User...)
	g.GET("/MyCart", h.myCart, guards.User...)

	g.GET("", h.list, guards.Admin...)
	g.GET("/:id", h.get, guards.Admin...)
	g.PATCH("/:id", h.update, guards.Admin...)
	g.DELETE("/:id", h.delete, guards.Admin...)
}

// 自分のカートを作るか、明細を丸ごと置き換える
func (h *CartHandler) addToCart(c echo.Context) error {
	me, _ := middleware.CurrentUser(c)

	var req cartItemsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	cart, err := h.uc.CreateOrUpdate(c.Request().Context(), me.ID, req.input())
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, echo.Map{"cart": cart})
}

func (h *CartHandler) removeFromCart(c echo.Context) error {
	me, _ := middleware.CurrentUser(c)

	var req removeFromCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), me.ID, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"cart": cart})
}

func (h *CartHandler) myCart(c echo.Context) error {
	me, _ := middleware.CurrentUser(c)

	cart, err := h.uc.MyCart(c.Request().Context(), me.ID)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"cart": cart})
}

func (h *CartHandler) list(c echo.Context) error {
	carts, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return okList(c, "carts", carts, len(carts))
}

func (h *CartHandler) get(c echo.Context) error {
	cart, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"cart": cart})
}

func (h *CartHandler) update(c echo.Context) error {
	var req cartItemsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	cart, err := h.uc.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"cart": cart})
}

func (h *CartHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return okDeleted(c, "Cart successfully deleted")
}
