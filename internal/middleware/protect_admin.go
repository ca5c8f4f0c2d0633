package middleware

import (
	"errors"
	"net/http"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	"github.com/tsizion/DokaBackend/internal/repository"
	auth "github.com/tsizion/DokaBackend/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// AuthJWTの後ろで使う。Admin / Super Admin だけ通す
func ProtectAdmin(admins repository.AdminRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			adminID, ok := subjectOf(c, auth.TokenTypeAdmin)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgNotAuthorized))
			}

			admin, err := admins.FindByID(c.Request().Context(), adminID)
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, errorJSON("The admin belonging to this token no longer exists."))
			}
			if err != nil {
				return err
			}

			if !admin.Role.IsValid() {
				return c.JSON(http.StatusForbidden, errorJSON("User does not have admin rights."))
			}

			c.Set(CtxAdminKey, admin)
			return next(c)
		}
	}
}

// ProtectAdminの後ろで使う。roleを絞る
func RequireRole(roles ...model.AdminRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin, ok := CurrentAdmin(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgNotAuthorized))
			}
			for _, r := range roles {
				if admin.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, errorJSON("You do not have permission to perform this action."))
		}
	}
}

func CurrentAdmin(c echo.Context) (*model.Admin, bool) {
	a, ok := c.Get(CtxAdminKey).(*model.Admin)
	return a, ok && a != nil
}
