package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
)

type DeletedUserRepository interface {
	Create(ctx context.Context, d *model.DeletedUser) error
	// 削除日時の新しい順
	List(ctx context.Context) ([]model.DeletedUser, error)
	FindByID(ctx context.Context, id string) (*model.DeletedUser, error)
	UpdateReason(ctx context.Context, id string, reason string) error
	Delete(ctx context.Context, id string) error
}
