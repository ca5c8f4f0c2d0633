package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
)

type CartRepository interface {
	// userIDをキーに作成または明細ごと上書き
	Upsert(ctx context.Context, cart *model.Cart) error
	// 明細を上書き
	Save(ctx context.Context, cart *model.Cart) error
	List(ctx context.Context) ([]model.Cart, error)
	FindByID(ctx context.Context, id string) (*model.Cart, error)
	FindByUserID(ctx context.Context, userID string) (*model.Cart, error)
	Delete(ctx context.Context, id string) error
}
