package handler

import (
	"net/http"

	"github.com/tsizion/DokaBackend/internal/middleware"
	"github.com/tsizion/DokaBackend/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /user のHTTP
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type createUserRequest struct {
	FullName    string   `json:"fullName" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	PhoneNumber string   `json:"phoneNumber" validate:"required"`
	Address     []string `json:"address"`
}

type updateUserRequest struct {
	FullName    *string   `json:"fullName" validate:"omitempty,min=1"`
	Email       *string   `json:"email" validate:"omitempty,email"`
	Password    *string   `json:"password" validate:"omitempty,min=8"`
	PhoneNumber *string   `json:"phoneNumber" validate:"omitempty,min=1"`
	Address     *[]string `json:"address"`
}

type deleteUserRequest struct {
	DeletionReason string `json:"deletionReason"`
}

func (h *UserHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/user")

	g.POST("", h.create)
	g.GET("", h.list, guards.Admin...)
	g.GET("/me", h.me, guards.User...)
	g.GET("/:id", h.get, guards.Admin...)
	g.PATCH("", h.updateMe, guards.User...)
	g.DELETE("", h.deleteMe, guards.User...)
	g.DELETE("/:id/admin", h.deleteByAdmin, guards.Admin...)
}

func (h *UserHandler) create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	user, err := h.uc.Create(c.Request().Context(), usecase.CreateUserInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, echo.Map{"user": user})
}

func (h *UserHandler) list(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return okList(c, "users", users, len(users))
}

func (h *UserHandler) me(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	return ok(c, http.StatusOK, echo.Map{"user": user})
}

func (h *UserHandler) get(c echo.Context) error {
	user, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"user": user})
}

func (h *UserHandler) updateMe(c echo.Context) error {
	me, _ := middleware.CurrentUser(c)

	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	user, err := h.uc.Update(c.Request().Context(), me.ID, usecase.UpdateUserInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Password:    req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"user": user})
}

// bodyは任意
func (h *UserHandler) deleteMe(c echo.Context) error {
	me, _ := middleware.CurrentUser(c)

	var req deleteUserRequest
	_ = c.Bind(&req)

	if err := h.uc.DeleteSelf(c.Request().Context(), me.ID, req.DeletionReason); err != nil {
		return writeError(c, err)
	}
	return okDeleted(c, "User successfully deleted")
}

func (h *UserHandler) deleteByAdmin(c echo.Context) error {
	admin, _ := middleware.CurrentAdmin(c)

	var req deleteUserRequest
	_ = c.Bind(&req)

	if err := h.uc.DeleteByAdmin(c.Request().Context(), *admin, c.Param("id"), req.DeletionReason); err != nil {
		return writeError(c, err)
	}
	return okDeleted(c, "User successfully deleted")
}
