package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
)

// 更新してよいのはこの2つだけ
type OrderStatusPatch struct {
	PaymentStatus  *model.PaymentStatus
	DeliveryStatus *model.OrderDeliveryStatus
}

type OrderRepository interface {
	// 明細も一緒に保存する
	Create(ctx context.Context, o *model.Order) error
	List(ctx context.Context) ([]model.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
	FindByID(ctx context.Context, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id string, patch OrderStatusPatch) error
	Delete(ctx context.Context, id string) error
}
