package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"
)

const msgDeliveryNotFound = "Delivery not found"

type DeliveryUsecase struct {
	deliveries repo.DeliveryRepository
	orders     repo.OrderRepository
	tx         repo.TransactionManager
}

func NewDeliveryUsecase(deliveries repo.DeliveryRepository, orders repo.OrderRepository, tx repo.TransactionManager) *DeliveryUsecase {
	return &DeliveryUsecase{deliveries: deliveries, orders: orders, tx: tx}
}

type CreateDeliveryInput struct {
	OrderID               string
	Courier               string
	Status                model.DeliveryStatus
	EstimatedDeliveryTime *time.Time
}

// 注文がなければ404。ステータスの既定はPending
func (u *DeliveryUsecase) Create(ctx context.Context, in CreateDeliveryInput) (*model.Delivery, error) {
	if _, err := u.orders.FindByID(ctx, in.OrderID); err != nil {
		return nil, notFoundAs(err, msgOrderNotFound)
	}

	status := in.Status
	if status == "" {
		status = model.DeliveryStatusPending
	}

	d := &model.Delivery{
		OrderID:               in.OrderID,
		Courier:               strings.TrimSpace(in.Courier),
		Status:                status,
		EstimatedDeliveryTime: in.EstimatedDeliveryTime,
	}
	if err := u.deliveries.Create(ctx, d); err != nil {
		return nil, err
	}
	return u.Get(ctx, d.ID)
}

func (u *DeliveryUsecase) List(ctx context.Context) ([]model.Delivery, error) {
	return u.deliveries.List(ctx)
}

func (u *DeliveryUsecase) Get(ctx context.Context, id string) (*model.Delivery, error) {
	d, err := u.deliveries.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgDeliveryNotFound)
	}
	return d, nil
}

// 変更できるのはステータスだけ。遷移の順序は問わない
func (u *DeliveryUsecase) UpdateStatus(ctx context.Context, adminID string, id string, status model.DeliveryStatus) (*model.Delivery, error) {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		before, err := r.Deliveries().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, msgDeliveryNotFound)
		}
		if err := r.Deliveries().UpdateStatus(ctx, id, status); err != nil {
			return notFoundAs(err, msgDeliveryNotFound)
		}
		return r.AuditLogs().Create(ctx, model.AuditLog{
			ActorID:      adminID,
			Action:       model.AuditActionUpdateDeliveryStatus,
			ResourceType: model.AuditResourceDelivery,
			ResourceID:   id,
			BeforeJSON:   auditJSON(map[string]string{"status": string(before.Status)}),
			AfterJSON:    auditJSON(map[string]string{"status": string(status)}),
		})
	})
	if err != nil {
		return nil, err
	}
	return u.Get(ctx, id)
}

func (u *DeliveryUsecase) Delete(ctx context.Context, id string) error {
	return notFoundAs(u.deliveries.Delete(ctx, id), msgDeliveryNotFound)
}
