package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *model.Review) error
	ListByProductID(ctx context.Context, productID string) ([]model.Review, error)
	FindByID(ctx context.Context, id string) (*model.Review, error)
	Delete(ctx context.Context, id string) error
}
