package handler

import (
	"errors"
	"net/http"

	auth "github.com/tsizion/DokaBackend/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	login *auth.LoginUsecase
}

func NewAuthHandler(login *auth.LoginUsecase) *AuthHandler {
	return &AuthHandler{login: login}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// /login と /admin/login
func (h *AuthHandler) RegisterRoutes(api *echo.Group) {
	api.POST("/login", h.loginUser)
	api.POST("/admin/login", h.loginAdmin)
}

func (h *AuthHandler) loginUser(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.login.LoginUser(c.Request().Context(), auth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return writeAuthError(c, err)
	}

	return c.JSON(http.StatusOK, successResponse{
		Status: "success",
		Token:  out.Token,
		Data:   echo.Map{"user": out.User},
	})
}

func (h *AuthHandler) loginAdmin(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.login.LoginAdmin(c.Request().Context(), auth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return writeAuthError(c, err)
	}

	return c.JSON(http.StatusOK, successResponse{
		Status: "success",
		Token:  out.Token,
		Data:   echo.Map{"admin": out.Admin},
	})
}

// authのエラーをHTTPに変換
func writeAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Status: "fail", Message: "Incorrect email or password"})
	case errors.Is(err, auth.ErrUserInactive):
		return c.JSON(http.StatusForbidden, ErrorResponse{Status: "fail", Message: "Your account is inactive."})
	default:
		return err
	}
}
