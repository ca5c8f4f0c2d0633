package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"gorm.io/gorm"
)

type adminGormRepository struct {
	db *gorm.DB
}

func NewAdminGormRepository(db *gorm.DB) repo.AdminRepository {
	return &adminGormRepository{db: db}
}

func (r *adminGormRepository) Create(ctx context.Context, admin *model.Admin) error {
	return mapErr(r.db.WithContext(ctx).Create(admin).Error)
}

func (r *adminGormRepository) List(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *adminGormRepository) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	var a model.Admin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *adminGormRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&a).Error; err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *adminGormRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Admin{}))
}
