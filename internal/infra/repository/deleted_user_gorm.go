package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"gorm.io/gorm"
)

type deletedUserGormRepository struct {
	db *gorm.DB
}

func NewDeletedUserGormRepository(db *gorm.DB) repo.DeletedUserRepository {
	return &deletedUserGormRepository{db: db}
}

func (r *deletedUserGormRepository) Create(ctx context.Context, d *model.DeletedUser) error {
	return mapErr(r.db.WithContext(ctx).Create(d).Error)
}

func (r *deletedUserGormRepository) List(ctx context.Context) ([]model.DeletedUser, error) {
	var ds []model.DeletedUser
	if err := r.db.WithContext(ctx).Order("deleted_at DESC").Find(&ds).Error; err != nil {
		return nil, err
	}
	return ds, nil
}

func (r *deletedUserGormRepository) FindByID(ctx context.Context, id string) (*model.DeletedUser, error) {
	var d model.DeletedUser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		return nil, mapErr(err)
	}
	return &d, nil
}

func (r *deletedUserGormRepository) UpdateReason(ctx context.Context, id string, reason string) error {
	res := r.db.WithContext(ctx).Model(&model.DeletedUser{}).Where("id = ?", id).Update("deletion_reason", reason)
	return affected(res)
}

func (r *deletedUserGormRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DeletedUser{}))
}
