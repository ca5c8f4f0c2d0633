package usecase

import (
	"context"
	"strings"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"
)

const msgDeletedUserNotFound = "Deleted user not found"

type DeletedUserUsecase struct {
	deleted repo.DeletedUserRepository
}

func NewDeletedUserUsecase(deleted repo.DeletedUserRepository) *DeletedUserUsecase {
	return &DeletedUserUsecase{deleted: deleted}
}

func (u *DeletedUserUsecase) List(ctx context.Context) ([]model.DeletedUser, error) {
	return u.deleted.List(ctx)
}

func (u *DeletedUserUsecase) Get(ctx context.Context, id string) (*model.DeletedUser, error) {
	d, err := u.deleted.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgDeletedUserNotFound)
	}
	return d, nil
}

// 変更できるのは削除理由だけ
func (u *DeletedUserUsecase) UpdateReason(ctx context.Context, id string, reason string) (*model.DeletedUser, error) {
	if err := u.deleted.UpdateReason(ctx, id, strings.TrimSpace(reason)); err != nil {
		return nil, notFoundAs(err, msgDeletedUserNotFound)
	}
	return u.Get(ctx, id)
}

func (u *DeletedUserUsecase) Delete(ctx context.Context, id string) error {
	return notFoundAs(u.deleted.Delete(ctx, id), msgDeletedUserNotFound)
}
