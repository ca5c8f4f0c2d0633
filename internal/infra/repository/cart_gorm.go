package repository

import (
	"context"
	"errors"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

var _ repo.CartRepository = (*CartGormRepository)(nil)

// ユーザーのカートがあれば上書き、なければ作成
func (r *CartGormRepository) Upsert(ctx context.Context, cart *model.Cart) error {
	err := r.upsert(ctx, cart)
	if errors.Is(err, repo.ErrDuplicate) {
		//同じユーザーのカートが先に作られた。やり直せば上書きになる
		cart.ID = ""
		err = r.upsert(ctx, cart)
	}
	return err
}

func (r *CartGormRepository) upsert(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Cart
		err := tx.Where("user_id = ?", cart.UserID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			items := cart.Items
			if err := tx.Omit(clause.Associations).Create(cart).Error; err != nil {
				return mapErr(err)
			}
			cart.Items = items
			return createCartItems(tx, cart)
		}
		if err != nil {
			return err
		}

		cart.ID = existing.ID
		cart.CreatedAt = existing.CreatedAt
		return saveCart(tx, cart)
	})
}

// 明細と合計を上書き
func (r *CartGormRepository) Save(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveCart(tx, cart)
	})
}

func saveCart(tx *gorm.DB, cart *model.Cart) error {
	res := tx.Model(&model.Cart{}).Where("id = ?", cart.ID).
		Select("total_price", "updated_at").
		Omit(clause.Associations).
		Updates(cart)
	if err := affected(res); err != nil {
		return err
	}

	//明細は入れ替え
	if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
		return err
	}
	return createCartItems(tx, cart)
}

func createCartItems(tx *gorm.DB, cart *model.Cart) error {
	if len(cart.Items) == 0 {
		return nil
	}
	for i := range cart.Items {
		cart.Items[i].ID = 0
		cart.Items[i].CartID = cart.ID
	}
	return tx.Omit(clause.Associations).Create(&cart.Items).Error
}

func (r *CartGormRepository) List(ctx context.Context) ([]model.Cart, error) {
	var carts []model.Cart
	err := r.withDetails(ctx).
		Order("created_at DESC").
		Find(&carts).Error
	if err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *CartGormRepository) FindByID(ctx context.Context, id string) (*model.Cart, error) {
	var c model.Cart
	if err := r.withDetails(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

func (r *CartGormRepository) FindByUserID(ctx context.Context, userID string) (*model.Cart, error) {
	var c model.Cart
	if err := r.withDetails(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

func (r *CartGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := affected(tx.Where("id = ?", id).Delete(&model.Cart{})); err != nil {
			return err
		}
		return tx.Where("cart_id = ?", id).Delete(&model.CartItem{}).Error
	})
}

// ユーザー・商品・カテゴリまで展開
func (r *CartGormRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Product").
		Preload("Items.Product.Category")
}
