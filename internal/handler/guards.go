package handler

import (
	"github.com/tsizion/DokaBackend/internal/config"
	"github.com/tsizion/DokaBackend/internal/domain/model"
	"github.com/tsizion/DokaBackend/internal/middleware"
	"github.com/tsizion/DokaBackend/internal/repository"

	"github.com/labstack/echo/v4"
)

// ルートごとに付けるミドルウェアの組
type Guards struct {
	User       []echo.MiddlewareFunc
	Admin      []echo.MiddlewareFunc
	SuperAdmin []echo.MiddlewareFunc
}

func NewGuards(cfg config.Config, users repository.UserRepository, admins repository.AdminRepository) Guards {
	authn := middleware.AuthJWT(cfg)
	admin := middleware.ProtectAdmin(admins)
	return Guards{
		User:       []echo.MiddlewareFunc{authn, middleware.ProtectUser(users)},
		Admin:      []echo.MiddlewareFunc{authn, admin},
		SuperAdmin: []echo.MiddlewareFunc{authn, admin, middleware.RequireRole(model.AdminRoleSuperAdmin)},
	}
}
