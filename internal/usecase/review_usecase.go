package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"
)

const msgReviewNotFound = "Review not found"

type ReviewUsecase struct {
	reviews  repo.ReviewRepository
	products repo.ProductRepository
}

func NewReviewUsecase(reviews repo.ReviewRepository, products repo.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, products: products}
}

type CreateReviewInput struct {
	Rating int
	Review string
	Images []string
}

// 1ユーザー1商品につき1件
func (u *ReviewUsecase) Create(ctx context.Context, userID string, productID string, in CreateReviewInput) (*model.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, NewValidationError(FieldError{Field: "rating", Message: "rating must be between 1 and 5"})
	}
	if _, err := u.products.FindByID(ctx, productID); err != nil {
		return nil, notFoundAs(err, msgProductNotFound)
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	rv := &model.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    in.Rating,
		Review:    strings.TrimSpace(in.Review),
		Images:    images,
	}
	if err := u.reviews.Create(ctx, rv); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, NewHTTPError(http.StatusBadRequest, "You have already reviewed this product")
		}
		return nil, err
	}
	return rv, nil
}

func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	if _, err := u.products.FindByID(ctx, productID); err != nil {
		return nil, notFoundAs(err, msgProductNotFound)
	}
	return u.reviews.ListByProductID(ctx, productID)
}

// 他人のレビューは見つからない扱い
func (u *ReviewUsecase) Delete(ctx context.Context, userID string, productID string, reviewID string) error {
	rv, err := u.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return notFoundAs(err, msgReviewNotFound)
	}
	if rv.UserID != userID || rv.ProductID != productID {
		return NewHTTPError(http.StatusNotFound, msgReviewNotFound)
	}
	return notFoundAs(u.reviews.Delete(ctx, reviewID), msgReviewNotFound)
}
