package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"github.com/shopspring/decimal"
)

const msgProductNotFound = "Product not found"

type ProductUsecase struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
	tx         repo.TransactionManager
}

// DI
func NewProductUsecase(products repo.ProductRepository, categories repo.CategoryRepository, tx repo.TransactionManager) *ProductUsecase {
	return &ProductUsecase{products: products, categories: categories, tx: tx}
}

// Categoryはカテゴリ名（大文字小文字を区別しない）
type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int64
	Images      []string
}

func validateAmounts(price *decimal.Decimal, stock *int64) error {
	var errs []FieldError
	if price != nil && price.IsNegative() {
		errs = append(errs, FieldError{Field: "price", Message: "price must be >= 0"})
	}
	if stock != nil && *stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Message: "stock must be >= 0"})
	}
	if len(errs) > 0 {
		return NewValidationError(errs...)
	}
	return nil
}

func newProduct(in CreateProductInput, categoryID string) model.Product {
	images := in.Images
	if images == nil {
		images = []string{}
	}
	return model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CategoryID:  categoryID,
		Price:       in.Price,
		Stock:       in.Stock,
		Images:      images,
	}
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (*model.Product, error) {
	if err := validateAmounts(&in.Price, &in.Stock); err != nil {
		return nil, err
	}

	c, err := u.categories.FindByName(ctx, in.Category)
	if err != nil {
		return nil, notFoundAs(err, msgCategoryNotFound)
	}

	p := newProduct(in, c.ID)
	if err := u.products.Create(ctx, &p); err != nil {
		return nil, err
	}
	p.Category = c
	return &p, nil
}

// カテゴリは1クエリでまとめて確認。1つでもなければ何も入れない
func (u *ProductUsecase) CreateMany(ctx context.Context, ins []CreateProductInput) ([]model.Product, error) {
	if len(ins) == 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "Invalid input data: an array of products is required")
	}
	for i := range ins {
		if err := validateAmounts(&ins[i].Price, &ins[i].Stock); err != nil {
			return nil, err
		}
	}

	//重複を除いたカテゴリ名
	seen := map[string]bool{}
	var names []string
	for _, in := range ins {
		key := strings.ToLower(strings.TrimSpace(in.Category))
		if !seen[key] {
			seen[key] = true
			names = append(names, key)
		}
	}

	var out []model.Product
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cs, err := r.Categories().FindByNames(ctx, names)
		if err != nil {
			return err
		}
		if len(cs) != len(names) {
			return NewHTTPError(http.StatusNotFound, "One or more categories not found")
		}

		byName := make(map[string]*model.Category, len(cs))
		for i := range cs {
			byName[strings.ToLower(cs[i].Name)] = &cs[i]
		}

		ps := make([]model.Product, 0, len(ins))
		for _, in := range ins {
			c := byName[strings.ToLower(strings.TrimSpace(in.Category))]
			ps = append(ps, newProduct(in, c.ID))
		}
		if err := r.Products().CreateMany(ctx, ps); err != nil {
			return err
		}

		for i := range ps {
			ps[i].Category = byName[strings.ToLower(strings.TrimSpace(ins[i].Category))]
		}
		out = ps
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

func (u *ProductUsecase) Get(ctx context.Context, id string) (*model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgProductNotFound)
	}
	return p, nil
}

// Categoryが来たらIDまたは名前で引き直す
type UpdateProductInput struct {
	Name        *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
	Stock       *int64
	Images      *[]string
}

func (u *ProductUsecase) Update(ctx context.Context, id string, in UpdateProductInput) (*model.Product, error) {
	if err := validateAmounts(in.Price, in.Stock); err != nil {
		return nil, err
	}

	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgProductNotFound)
	}

	if in.Category != nil {
		c, err := u.resolveCategory(ctx, *in.Category)
		if err != nil {
			return nil, err
		}
		p.CategoryID = c.ID
		p.Category = c
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Images != nil {
		p.Images = *in.Images
	}

	if err := u.products.Update(ctx, p); err != nil {
		return nil, notFoundAs(err, msgProductNotFound)
	}
	return p, nil
}

func (u *ProductUsecase) resolveCategory(ctx context.Context, ref string) (*model.Category, error) {
	c, err := u.categories.FindByID(ctx, ref)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	c, err = u.categories.FindByName(ctx, ref)
	if err != nil {
		return nil, notFoundAs(err, msgCategoryNotFound)
	}
	return c, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, id string) error {
	return notFoundAs(u.products.Delete(ctx, id), msgProductNotFound)
}
