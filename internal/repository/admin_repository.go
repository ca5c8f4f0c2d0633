package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	List(ctx context.Context) ([]model.Admin, error)
	FindByID(ctx context.Context, id string) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	Delete(ctx context.Context, id string) error
}
