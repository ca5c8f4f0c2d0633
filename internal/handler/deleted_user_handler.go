package handler

import (
	"net/http"

	"github.com/tsizion/DokaBackend/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /deletedUser は管理者のみ
type DeletedUserHandler struct {
	uc *usecase.DeletedUserUsecase
}

func NewDeletedUserHandler(uc *usecase.DeletedUserUsecase) *DeletedUserHandler {
	return &DeletedUserHandler{uc: uc}
}

type updateDeletedUserRequest struct {
	DeletionReason string `json:"deletionReason" validate:"required"`
}

func (h *DeletedUserHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/deletedUser", guards.Admin...)

	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *DeletedUserHandler) list(c echo.Context) error {
	ds, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return okList(c, "deletedUsers", ds, len(ds))
}

func (h *DeletedUserHandler) get(c echo.Context) error {
	d, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"deletedUser": d})
}

func (h *DeletedUserHandler) update(c echo.Context) error {
	var req updateDeletedUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	d, err := h.uc.UpdateReason(c.Request().Context(), c.Param("id"), req.DeletionReason)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"deletedUser": d})
}

func (h *DeletedUserHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return okDeleted(c, "Deleted user successfully removed")
}
