package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) repo.ReviewRepository {
	return &reviewGormRepository{db: db}
}

func (r *reviewGormRepository) Create(ctx context.Context, rv *model.Review) error {
	return mapErr(r.db.WithContext(ctx).Omit(clause.Associations).Create(rv).Error)
}

// 投稿者名を付けて新しい順
func (r *reviewGormRepository) ListByProductID(ctx context.Context, productID string) ([]model.Review, error) {
	var rs []model.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&rs).Error
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (r *reviewGormRepository) FindByID(ctx context.Context, id string) (*model.Review, error) {
	var rv model.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rv).Error; err != nil {
		return nil, mapErr(err)
	}
	return &rv, nil
}

func (r *reviewGormRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Review{}))
}
