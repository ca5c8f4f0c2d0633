package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	CreateMany(ctx context.Context, ps []model.Product) error
	// カテゴリ付き、新しい順
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
}

// 在庫の増減
type InventoryRepository interface {
	// 在庫が足りるときだけ減らす。足りなければfalse
	DecreaseStockIfEnough(ctx context.Context, productID string, qty int64) (bool, error)
}
