package handler

import (
	"fmt"
	"net/http"

	"github.com/tsizion/DokaBackend/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type bulkCategoriesRequest struct {
	Categories []categoryRequest `json:"categories" validate:"required,min=1,dive"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

func (h *CategoryHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/category")

	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create, guards.Admin...)
	g.POST("/bulk", h.createBulk, guards.Admin...)
	g.PATCH("/:id", h.update, guards.Admin...)
	g.DELETE("/All", h.deleteAll, guards.Admin...)
	g.DELETE("/:id", h.delete, guards.Admin...)
}

func (h *CategoryHandler) create(c echo.Context) error {
	var req categoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	cat, err := h.uc.Create(c.Request().Context(), usecase.CategoryInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, echo.Map{"category": cat})
}

// bodyはJSON配列。echoのbinderで配列のまま受ける
func (h *CategoryHandler) createBulk(c echo.Context) error {
	var req bulkCategoriesRequest
	if err := c.Bind(&req.Categories); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "Invalid input data: an array of categories is required"))
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	ins := make([]usecase.CategoryInput, 0, len(req.Categories))
	for _, r := range req.Categories {
		ins = append(ins, usecase.CategoryInput{Name: r.Name, Description: r.Description})
	}

	cats, err := h.uc.CreateMany(c.Request().Context(), ins)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, echo.Map{"categories": cats})
}

func (h *CategoryHandler) list(c echo.Context) error {
	cats, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return okList(c, "categories", cats, len(cats))
}

func (h *CategoryHandler) get(c echo.Context) error {
	cat, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"category": cat})
}

func (h *CategoryHandler) update(c echo.Context) error {
	var req updateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	cat, err := h.uc.Update(c.Request().Context(), c.Param("id"), usecase.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"category": cat})
}

func (h *CategoryHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return okDeleted(c, "Category successfully deleted")
}

func (h *CategoryHandler) deleteAll(c echo.Context) error {
	n, err := h.uc.DeleteAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return okDeleted(c, fmt.Sprintf("%d categories successfully deleted", n))
}
