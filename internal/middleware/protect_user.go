package middleware

import (
	"errors"
	"net/http"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	"github.com/tsizion/DokaBackend/internal/repository"
	auth "github.com/tsizion/DokaBackend/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// AuthJWTの後ろで使う。subjectのユーザーがDBにいるか確認する
func ProtectUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := subjectOf(c, auth.TokenTypeUser)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgNotAuthorized))
			}

			//DBから最新のuserを取得する
			user, err := users.FindByID(c.Request().Context(), userID)
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, errorJSON("The user belonging to this token no longer exists."))
			}
			if err != nil {
				return err
			}

			if user.Status == model.UserStatusInactive {
				return c.JSON(http.StatusForbidden, errorJSON("Your account is inactive."))
			}

			c.Set(CtxUserKey, user)
			return next(c)
		}
	}
}

// ProtectUserが入れたユーザー
func CurrentUser(c echo.Context) (*model.User, bool) {
	u, ok := c.Get(CtxUserKey).(*model.User)
	return u, ok && u != nil
}
