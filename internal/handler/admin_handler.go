package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	"github.com/tsizion/DokaBackend/internal/middleware"
	"github.com/tsizion/DokaBackend/internal/repository"
	"github.com/tsizion/DokaBackend/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin をまとめる
type AdminHandler struct {
	uc *usecase.AdminUsecase
}

// DI
func NewAdminHandler(uc *usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

type createAdminRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"omitempty,admin_role"`
}

// /admin/login は AuthHandler 側
func (h *AdminHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/admin")

	g.GET("/me", h.me, guards.Admin...)
	g.GET("/audit-logs", h.auditLogs, guards.Admin...)
	g.GET("/audit-logs/:resourceType/:resourceId", h.auditHistory, guards.Admin...)
	g.GET("", h.list, guards.Admin...)
	g.POST("", h.create, guards.SuperAdmin...)
	g.DELETE("/:id", h.delete, guards.SuperAdmin...)
}

func (h *AdminHandler) me(c echo.Context) error {
	admin, _ := middleware.CurrentAdmin(c)
	return ok(c, http.StatusOK, echo.Map{"admin": admin})
}

func (h *AdminHandler) list(c echo.Context) error {
	admins, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return okList(c, "admins", admins, len(admins))
}

func (h *AdminHandler) create(c echo.Context) error {
	var req createAdminRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	admin, err := h.uc.Create(c.Request().Context(), usecase.CreateAdminInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      model.AdminRole(req.Role),
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, echo.Map{"admin": admin})
}

func (h *AdminHandler) delete(c echo.Context) error {
	actor, _ := middleware.CurrentAdmin(c)

	if err := h.uc.Delete(c.Request().Context(), *actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return okDeleted(c, "Admin successfully deleted")
}

// ?adminId=&action=A,B&resourceType=&resourceId=&since=&page=&perPage=
func (h *AdminHandler) auditLogs(c echo.Context) error {
	q := repository.AuditQuery{
		AdminID:      c.QueryParam("adminId"),
		ResourceType: model.AuditResourceType(c.QueryParam("resourceType")),
		ResourceID:   c.QueryParam("resourceId"),
	}
	if v := c.QueryParam("action"); v != "" {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				q.Actions = append(q.Actions, model.AuditAction(a))
			}
		}
	}
	if v := c.QueryParam("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return writeError(c, usecase.NewValidationError(usecase.FieldError{Field: "since", Message: "since must be RFC3339"}))
		}
		q.Since = t
	}
	q.Page, _ = strconv.Atoi(c.QueryParam("page"))
	q.PerPage, _ = strconv.Atoi(c.QueryParam("perPage"))

	page, err := h.uc.ListAuditLogs(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return okPage(c, "auditLogs", page.Logs, len(page.Logs), page.Total)
}

func (h *AdminHandler) auditHistory(c echo.Context) error {
	rt := model.AuditResourceType(c.Param("resourceType"))
	logs, err := h.uc.ResourceHistory(c.Request().Context(), rt, c.Param("resourceId"))
	if err != nil {
		return writeError(c, err)
	}
	return okList(c, "auditLogs", logs, len(logs))
}
