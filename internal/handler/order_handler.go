package handler

import (
	"net/http"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	"github.com/tsizion/DokaBackend/internal/middleware"
	"github.com/tsizion/DokaBackend/internal/repository"
	"github.com/tsizion/DokaBackend/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /order のHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type orderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

type placeOrderRequest struct {
	Products       []orderItemRequest        `json:"products" validate:"required,min=1,dive"`
	PaymentStatus  model.PaymentStatus       `json:"paymentStatus" validate:"omitempty,payment_status"`
	DeliveryStatus model.OrderDeliveryStatus `json:"deliveryStatus" validate:"omitempty,order_delivery_status"`
}

type updateOrderStatusRequest struct {
	PaymentStatus  *model.PaymentStatus       `json:"paymentStatus" validate:"omitempty,payment_status"`
	DeliveryStatus *model.OrderDeliveryStatus `json:"deliveryStatus" validate:"omitempty,order_delivery_status"`
}

func (h *OrderHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/order")

	g.POST("", h.create, guards.User...)
	g.GET("/MyOrders", h.myOrders, guards.User...)
	g.GET("/MyOrders/:id", h.myOrder, guards.User...)

	g.GET("", h.list, guards.Admin...)
	g.GET("/:id", h.get, guards.Admin...)
	g.PATCH("/:id/UpdateStatus", h.updateStatus, guards.Admin...)
	g.DELETE("/:id", h.delete, guards.Admin...)
}

func (h *OrderHandler) create(c echo.Context) error {
	me, _ := middleware.CurrentUser(c)

	var req placeOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, usecase.OrderItemInput{ProductID: p.ProductID, Quantity: p.Quantity})
	}

	order, err := h.uc.Create(c.Request().Context(), me.ID, usecase.PlaceOrderInput{
		Items:          items,
		PaymentStatus:  req.PaymentStatus,
		DeliveryStatus: req.DeliveryStatus,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, echo.Map{"order": order})
}

func (h *OrderHandler) myOrders(c echo.Context) error {
	me, _ := middleware.CurrentUser(c)

	orders, err := h.uc.MyOrders(c.Request().Context(), me.ID)
	if err != nil {
		return writeError(c, err)
	}
	return okList(c, "orders", orders, len(orders))
}

func (h *OrderHandler) myOrder(c echo.Context) error {
	me, _ := middleware.CurrentUser(c)

	order, err := h.uc.MyOrder(c.Request().Context(), me.ID, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"order": order})
}

func (h *OrderHandler) list(c echo.Context) error {
	orders, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return okList(c, "orders", orders, len(orders))
}

func (h *OrderHandler) get(c echo.Context) error {
	order, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"order": order})
}

// どちらか一方だけでもよい
func (h *OrderHandler) updateStatus(c echo.Context) error {
	admin, _ := middleware.CurrentAdmin(c)

	var req updateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), admin.ID, c.Param("id"), repository.OrderStatusPatch{
		PaymentStatus:  req.PaymentStatus,
		DeliveryStatus: req.DeliveryStatus,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"order": order})
}

func (h *OrderHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return okDeleted(c, "Order successfully deleted")
}
