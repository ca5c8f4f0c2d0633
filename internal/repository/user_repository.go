package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
)

// ユーザーの保存・取得を約束
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// 同じemailまたは電話番号を持つ別ユーザーがいるか
	ExistsByEmailOrPhone(ctx context.Context, email string, phone string, excludeID string) (bool, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}
