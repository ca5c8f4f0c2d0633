package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deliveryGormRepository struct {
	db *gorm.DB
}

func NewDeliveryGormRepository(db *gorm.DB) repo.DeliveryRepository {
	return &deliveryGormRepository{db: db}
}

func (r *deliveryGormRepository) Create(ctx context.Context, d *model.Delivery) error {
	return mapErr(r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error)
}

func (r *deliveryGormRepository) List(ctx context.Context) ([]model.Delivery, error) {
	var ds []model.Delivery
	if err := r.withOrder(ctx).Order("created_at DESC").Find(&ds).Error; err != nil {
		return nil, err
	}
	return ds, nil
}

func (r *deliveryGormRepository) FindByID(ctx context.Context, id string) (*model.Delivery, error) {
	var d model.Delivery
	if err := r.withOrder(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		return nil, mapErr(err)
	}
	return &d, nil
}

func (r *deliveryGormRepository) UpdateStatus(ctx context.Context, id string, status model.DeliveryStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Delivery{}).Where("id = ?", id).Update("status", status)
	return affected(res)
}

func (r *deliveryGormRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Delivery{}))
}

func (r *deliveryGormRepository) withOrder(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Order").Preload("Order.Items")
}
