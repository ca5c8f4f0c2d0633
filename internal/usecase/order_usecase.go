package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"github.com/shopspring/decimal"
)

const msgOrderNotFound = "Order not found"

type OrderUsecase struct {
	orders    repo.OrderRepository
	products  repo.ProductRepository
	tx        repo.TransactionManager
	publisher EventPublisher
	// trueなら注文確定時に在庫を減らす
	reserveStock bool
}

func NewOrderUsecase(
	orders repo.OrderRepository,
	products repo.ProductRepository,
	tx repo.TransactionManager,
	publisher EventPublisher,
	reserveStock bool,
) *OrderUsecase {
	return &OrderUsecase{
		orders:       orders,
		products:     products,
		tx:           tx,
		publisher:    publisher,
		reserveStock: reserveStock,
	}
}

type OrderItemInput struct {
	ProductID string
	Quantity  int64
}

type PlaceOrderInput struct {
	Items          []OrderItemInput
	PaymentStatus  model.PaymentStatus
	DeliveryStatus model.OrderDeliveryStatus
}

func errExceedsStock(name string) error {
	return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Requested quantity for product %s exceeds available stock", name))
}

// 在庫を確認して注文を作る
func (u *OrderUsecase) Create(ctx context.Context, userID string, in PlaceOrderInput) (*model.Order, error) {
	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(in.Items))
	names := make(map[string]string, len(in.Items))

	for _, it := range in.Items {
		p, err := u.products.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, notFoundAs(err, fmt.Sprintf("Product with ID %s not found", it.ProductID))
		}
		if it.Quantity > p.Stock {
			return nil, errExceedsStock(p.Name)
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(it.Quantity)))
		items = append(items, model.OrderItem{ProductID: p.ID, Quantity: it.Quantity})
		names[p.ID] = p.Name
	}

	order := &model.Order{
		UserID:         userID,
		Items:          items,
		TotalPrice:     total,
		PaymentStatus:  in.PaymentStatus,
		DeliveryStatus: in.DeliveryStatus,
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = model.PaymentStatusPending
	}
	if order.DeliveryStatus == "" {
		order.DeliveryStatus = model.OrderDeliveryPending
	}

	if u.reserveStock {
		//条件付きUPDATEで減らすので同時注文でもマイナスにならない
		err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
			for _, it := range items {
				ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
				if err != nil {
					return err
				}
				if !ok {
					return errExceedsStock(names[it.ProductID])
				}
			}
			return r.Orders().Create(ctx, order)
		})
		if err != nil {
			return nil, err
		}
	} else if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	publish(ctx, u.publisher, EventOrderCreated, map[string]interface{}{
		"orderId":    order.ID,
		"userId":     order.UserID,
		"totalPrice": order.TotalPrice,
		"items":      order.Items,
	})

	return u.Get(ctx, order.ID)
}

func (u *OrderUsecase) MyOrders(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := u.orders.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, NewHTTPError(http.StatusNotFound, "No orders found for this user")
	}
	return orders, nil
}

// 他人の注文は見つからない扱い
func (u *OrderUsecase) MyOrder(ctx context.Context, userID string, id string) (*model.Order, error) {
	const msg = "Order not found or you are not authorized"

	o, err := u.orders.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msg)
	}
	if o.UserID != userID {
		return nil, NewHTTPError(http.StatusNotFound, msg)
	}
	return o, nil
}

func (u *OrderUsecase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

func (u *OrderUsecase) Get(ctx context.Context, id string) (*model.Order, error) {
	o, err := u.orders.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgOrderNotFound)
	}
	return o, nil
}

// deliveryStatus / paymentStatus 以外は受け付けない
func (u *OrderUsecase) UpdateStatus(ctx context.Context, adminID string, id string, patch repo.OrderStatusPatch) (*model.Order, error) {
	if patch.PaymentStatus == nil && patch.DeliveryStatus == nil {
		return nil, NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		before, err := r.Orders().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, msgOrderNotFound)
		}

		if err := r.Orders().UpdateStatus(ctx, id, patch); err != nil {
			return notFoundAs(err, msgOrderNotFound)
		}

		after := map[string]string{
			"paymentStatus":  string(before.PaymentStatus),
			"deliveryStatus": string(before.DeliveryStatus),
		}
		if patch.PaymentStatus != nil {
			after["paymentStatus"] = string(*patch.PaymentStatus)
		}
		if patch.DeliveryStatus != nil {
			after["deliveryStatus"] = string(*patch.DeliveryStatus)
		}

		return r.AuditLogs().Create(ctx, model.AuditLog{
			ActorID:      adminID,
			Action:       model.AuditActionUpdateOrderStatus,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   id,
			BeforeJSON: auditJSON(map[string]string{
				"paymentStatus":  string(before.PaymentStatus),
				"deliveryStatus": string(before.DeliveryStatus),
			}),
			AfterJSON: auditJSON(after),
		})
	})
	if err != nil {
		return nil, err
	}

	o, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, u.publisher, EventOrderStatusUpdated, map[string]interface{}{
		"orderId":        o.ID,
		"paymentStatus":  o.PaymentStatus,
		"deliveryStatus": o.DeliveryStatus,
	})
	return o, nil
}

func (u *OrderUsecase) Delete(ctx context.Context, id string) error {
	return notFoundAs(u.orders.Delete(ctx, id), msgOrderNotFound)
}
