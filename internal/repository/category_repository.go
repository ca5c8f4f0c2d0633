package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
)

// カテゴリ名の比較はすべて大文字小文字を区別しない
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	CreateMany(ctx context.Context, cs []model.Category) error
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	// 名前の一覧をまとめて引く（1クエリ）
	FindByNames(ctx context.Context, names []string) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id string) error
	// 全件削除。消した件数を返す
	DeleteAll(ctx context.Context) (int64, error)
}
