package repository

import (
	"context"
	"strings"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"gorm.io/gorm"
)

type categoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) repo.CategoryRepository {
	return &categoryGormRepository{db: db}
}

func (r *categoryGormRepository) Create(ctx context.Context, c *model.Category) error {
	return mapErr(r.db.WithContext(ctx).Create(c).Error)
}

// 1件でも失敗したら何も入れない（呼び出し側のTx前提）
func (r *categoryGormRepository) CreateMany(ctx context.Context, cs []model.Category) error {
	if len(cs) == 0 {
		return nil
	}
	return mapErr(r.db.WithContext(ctx).CreateInBatches(&cs, 100).Error)
}

func (r *categoryGormRepository) List(ctx context.Context) ([]model.Category, error) {
	var cs []model.Category
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *categoryGormRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

func (r *categoryGormRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Where("LOWER(name) = ?", toLower(name)).First(&c).Error; err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

func (r *categoryGormRepository) FindByNames(ctx context.Context, names []string) ([]model.Category, error) {
	if len(names) == 0 {
		return []model.Category{}, nil
	}
	var cs []model.Category
	if err := r.db.WithContext(ctx).Where("LOWER(name) IN ?", lowerAll(names)).Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *categoryGormRepository) Update(ctx context.Context, c *model.Category) error {
	res := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", c.ID).
		Select("name", "description", "updated_at").
		Updates(c)
	return affected(res)
}

func (r *categoryGormRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{}))
}

func (r *categoryGormRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Category{})
	return res.RowsAffected, res.Error
}

func toLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
