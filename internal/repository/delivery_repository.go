package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
)

type DeliveryRepository interface {
	Create(ctx context.Context, d *model.Delivery) error
	List(ctx context.Context) ([]model.Delivery, error)
	FindByID(ctx context.Context, id string) (*model.Delivery, error)
	UpdateStatus(ctx context.Context, id string, status model.DeliveryStatus) error
	Delete(ctx context.Context, id string) error
}
