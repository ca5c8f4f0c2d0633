package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"
)

const msgCategoryNotFound = "Category not found"

func errCategoryExists(name string) error {
	return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Category with name %s already exists", name))
}

type CategoryUsecase struct {
	categories repo.CategoryRepository
	tx         repo.TransactionManager
}

func NewCategoryUsecase(categories repo.CategoryRepository, tx repo.TransactionManager) *CategoryUsecase {
	return &CategoryUsecase{categories: categories, tx: tx}
}

type CategoryInput struct {
	Name        string
	Description string
}

func (u *CategoryUsecase) Create(ctx context.Context, in CategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(in.Name)

	//大文字小文字を区別せず重複チェック
	if _, err := u.categories.FindByName(ctx, name); err == nil {
		return nil, errCategoryExists(name)
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	c := &model.Category{Name: name, Description: in.Description}
	if err := u.categories.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, errCategoryExists(name)
		}
		return nil, err
	}
	return c, nil
}

// 全件成功か0件
func (u *CategoryUsecase) CreateMany(ctx context.Context, ins []CategoryInput) ([]model.Category, error) {
	if len(ins) == 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "Invalid input data: an array of categories is required")
	}

	seen := make(map[string]bool, len(ins))
	names := make([]string, 0, len(ins))
	cs := make([]model.Category, 0, len(ins))
	for _, in := range ins {
		name := strings.TrimSpace(in.Name)
		key := strings.ToLower(name)
		if seen[key] {
			return nil, errCategoryExists(name)
		}
		seen[key] = true
		names = append(names, name)
		cs = append(cs, model.Category{Name: name, Description: in.Description})
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		existing, err := r.Categories().FindByNames(ctx, names)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return errCategoryExists(existing[0].Name)
		}

		if err := r.Categories().CreateMany(ctx, cs); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return NewHTTPError(http.StatusBadRequest, "One or more categories already exist")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}

func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

func (u *CategoryUsecase) Get(ctx context.Context, id string) (*model.Category, error) {
	c, err := u.categories.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgCategoryNotFound)
	}
	return c, nil
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

func (u *CategoryUsecase) Update(ctx context.Context, id string, in UpdateCategoryInput) (*model.Category, error) {
	c, err := u.categories.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgCategoryNotFound)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		other, err := u.categories.FindByName(ctx, name)
		if err == nil && other.ID != c.ID {
			return nil, errCategoryExists(name)
		}
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		c.Name = name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}

	if err := u.categories.Update(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, errCategoryExists(c.Name)
		}
		return nil, notFoundAs(err, msgCategoryNotFound)
	}
	return c, nil
}

func (u *CategoryUsecase) Delete(ctx context.Context, id string) error {
	return notFoundAs(u.categories.Delete(ctx, id), msgCategoryNotFound)
}

// 商品側の参照は単体削除と同じく見ない
func (u *CategoryUsecase) DeleteAll(ctx context.Context) (int64, error) {
	return u.categories.DeleteAll(ctx)
}
