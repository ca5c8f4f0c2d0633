package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"github.com/shopspring/decimal"
)

const msgCartNotFound = "Cart not found"

type CartUsecase struct {
	carts    repo.CartRepository
	products repo.ProductRepository
}

// DI
func NewCartUsecase(carts repo.CartRepository, products repo.ProductRepository) *CartUsecase {
	return &CartUsecase{carts: carts, products: products}
}

type CartItemInput struct {
	ProductID string
	Quantity  int64
}

// 明細を現在の価格で合計する
func (u *CartUsecase) priceItems(ctx context.Context, in []CartItemInput) ([]model.CartItem, decimal.Decimal, error) {
	total := decimal.Zero
	items := make([]model.CartItem, 0, len(in))

	for _, it := range in {
		p, err := u.products.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, decimal.Zero, notFoundAs(err, fmt.Sprintf("Product with ID %s not found", it.ProductID))
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(it.Quantity)))
		items = append(items, model.CartItem{ProductID: p.ID, Quantity: it.Quantity})
	}
	return items, total, nil
}

// ユーザーのカートを丸ごと上書き（なければ作成）
func (u *CartUsecase) CreateOrUpdate(ctx context.Context, userID string, in []CartItemInput) (*model.Cart, error) {
	items, total, err := u.priceItems(ctx, in)
	if err != nil {
		return nil, err
	}

	cart := &model.Cart{UserID: userID, Items: items, TotalPrice: total}
	if err := u.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return u.carts.FindByUserID(ctx, userID)
}

// 明細を1つ外して合計を減らす。合計は0未満にしない
func (u *CartUsecase) RemoveItem(ctx context.Context, userID string, productID string) (*model.Cart, error) {
	cart, err := u.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, msgCartNotFound)
	}

	idx := -1
	for i, it := range cart.Items {
		if it.ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, NewHTTPError(http.StatusNotFound, "Product not found in cart")
	}

	//商品が消えていたら減額0
	dec := decimal.Zero
	if p, err := u.products.FindByID(ctx, productID); err == nil {
		dec = p.Price.Mul(decimal.NewFromInt(cart.Items[idx].Quantity))
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	items := make([]model.CartItem, 0, len(cart.Items)-1)
	items = append(items, cart.Items[:idx]...)
	items = append(items, cart.Items[idx+1:]...)

	//空になったカートの合計は価格変動に関係なく0
	total := cart.TotalPrice.Sub(dec)
	if total.IsNegative() || len(items) == 0 {
		total = decimal.Zero
	}

	cart.Items = items
	cart.TotalPrice = total
	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, notFoundAs(err, msgCartNotFound)
	}
	return u.carts.FindByUserID(ctx, userID)
}

func (u *CartUsecase) MyCart(ctx context.Context, userID string) (*model.Cart, error) {
	cart, err := u.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, msgCartNotFound)
	}
	return cart, nil
}

func (u *CartUsecase) List(ctx context.Context) ([]model.Cart, error) {
	return u.carts.List(ctx)
}

func (u *CartUsecase) Get(ctx context.Context, id string) (*model.Cart, error) {
	cart, err := u.carts.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgCartNotFound)
	}
	return cart, nil
}

// 管理者による明細の上書き
func (u *CartUsecase) Update(ctx context.Context, id string, in []CartItemInput) (*model.Cart, error) {
	cart, err := u.carts.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgCartNotFound)
	}

	items, total, err := u.priceItems(ctx, in)
	if err != nil {
		return nil, err
	}

	cart.Items = items
	cart.TotalPrice = total
	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, notFoundAs(err, msgCartNotFound)
	}
	return u.carts.FindByID(ctx, id)
}

func (u *CartUsecase) Delete(ctx context.Context, id string) error {
	return notFoundAs(u.carts.Delete(ctx, id), msgCartNotFound)
}
