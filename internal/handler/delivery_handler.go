package handler

import (
	"net/http"
	"time"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	"github.com/tsizion/DokaBackend/internal/middleware"
	"github.com/tsizion/DokaBackend/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DeliveryHandler struct {
	uc *usecase.DeliveryUsecase
}

func NewDeliveryHandler(uc *usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

type createDeliveryRequest struct {
	OrderID               string               `json:"orderId" validate:"required"`
	Courier               string               `json:"courier"`
	Status                model.DeliveryStatus `json:"status" validate:"omitempty,delivery_status"`
	EstimatedDeliveryTime *time.Time           `json:"estimatedDeliveryTime"`
}

type updateDeliveryStatusRequest struct {
	Status model.DeliveryStatus `json:"status" validate:"required,delivery_status"`
}

// 配送は管理者のみ
func (h *DeliveryHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/delivery", guards.Admin...)

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PATCH("/:id", h.updateStatus)
	g.DELETE("/:id", h.delete)
}

func (h *DeliveryHandler) create(c echo.Context) error {
	var req createDeliveryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	d, err := h.uc.Create(c.Request().Context(), usecase.CreateDeliveryInput{
		OrderID:               req.OrderID,
		Courier:               req.Courier,
		Status:                req.Status,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, echo.Map{"delivery": d})
}

func (h *DeliveryHandler) list(c echo.Context) error {
	ds, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return okList(c, "deliveries", ds, len(ds))
}

func (h *DeliveryHandler) get(c echo.Context) error {
	d, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"delivery": d})
}

func (h *DeliveryHandler) updateStatus(c echo.Context) error {
	admin, _ := middleware.CurrentAdmin(c)

	var req updateDeliveryStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	d, err := h.uc.UpdateStatus(c.Request().Context(), admin.ID, c.Param("id"), req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"delivery": d})
}

func (h *DeliveryHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return okDeleted(c, "Delivery record successfully deleted")
}
