package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

var _ repo.OrderRepository = (*OrderGormRepository)(nil)

// 注文ヘッダと明細をまとめて保存
func (r *OrderGormRepository) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := o.Items
		if err := tx.Omit(clause.Associations).Create(o).Error; err != nil {
			return mapErr(err)
		}
		o.Items = items
		if len(o.Items) == 0 {
			return nil
		}
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
		}
		return tx.Omit(clause.Associations).Create(&o.Items).Error
	})
}

func (r *OrderGormRepository) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.withDetails(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	err := r.withDetails(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	if err := r.withDetails(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, mapErr(err)
	}
	return &o, nil
}

// nilのフィールドは更新しない
func (r *OrderGormRepository) UpdateStatus(ctx context.Context, id string, patch repo.OrderStatusPatch) error {
	updates := map[string]interface{}{}
	if patch.PaymentStatus != nil {
		updates["payment_status"] = *patch.PaymentStatus
	}
	if patch.DeliveryStatus != nil {
		updates["delivery_status"] = *patch.DeliveryStatus
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Updates(updates)
	return affected(res)
}

func (r *OrderGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := affected(tx.Where("id = ?", id).Delete(&model.Order{})); err != nil {
			return err
		}
		return tx.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error
	})
}

// 注文者と商品まで展開
func (r *OrderGormRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Product")
}
