package handler

import (
	"bytes"
	"net/http"

	"github.com/tsizion/DokaBackend/internal/infra/export"
	"github.com/tsizion/DokaBackend/internal/middleware"
	"github.com/tsizion/DokaBackend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /product と /product/:id/reviews
type ProductHandler struct {
	uc      *usecase.ProductUsecase
	reviews *usecase.ReviewUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, reviews *usecase.ReviewUsecase) *ProductHandler {
	return &ProductHandler{uc: uc, reviews: reviews}
}

// categoryはカテゴリ名
type createProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Category    string           `json:"category" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       int64            `json:"stock" validate:"gte=0"`
	Images      []string         `json:"images"`
}

func (r createProductRequest) input() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       *r.Price,
		Stock:       r.Stock,
		Images:      r.Images,
	}
}

type bulkProductsRequest struct {
	Products []createProductRequest `json:"products" validate:"required,min=1,dive"`
}

// categoryはIDまたは名前
type updateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	Description *string          `json:"description"`
	Category    *string          `json:"category" validate:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock" validate:"omitempty,gte=0"`
	Images      *[]string        `json:"images"`
}

type reviewRequest struct {
	Rating int      `json:"rating" validate:"required,min=1,max=5"`
	Review string   `json:"review" validate:"required"`
	Images []string `json:"images"`
}

func (h *ProductHandler) RegisterRoutes(api *echo.Group, guards Guards) {
	g := api.Group("/product")

	g.GET("", h.list)
	g.GET("/export", h.export, guards.Admin...)
	g.GET("/:id", h.get)
	g.POST("", h.create, guards.Admin...)
	g.POST("/bulk", h.createBulk, guards.Admin...)
	g.PATCH("/:id", h.update, guards.Admin...)
	g.DELETE("/:id", h.delete, guards.Admin...)

	g.GET("/:id/reviews", h.listReviews)
	g.POST("/:id/reviews", h.createReview, guards.User...)
	g.DELETE("/:id/reviews/:reviewId", h.deleteReview, guards.User...)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.Create(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, echo.Map{"product": p})
}

// bodyはJSON配列。echoのbinderで配列のまま受ける
func (h *ProductHandler) createBulk(c echo.Context) error {
	var req bulkProductsRequest
	if err := c.Bind(&req.Products); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "Invalid input data: an array of products is required"))
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	ins := make([]usecase.CreateProductInput, 0, len(req.Products))
	for _, r := range req.Products {
		ins = append(ins, r.input())
	}

	ps, err := h.uc.CreateMany(c.Request().Context(), ins)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, echo.Map{"products": ps})
}

func (h *ProductHandler) list(c echo.Context) error {
	ps, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return okList(c, "products", ps, len(ps))
}

func (h *ProductHandler) get(c echo.Context) error {
	p, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"product": p})
}

func (h *ProductHandler) update(c echo.Context) error {
	var req updateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.Update(c.Request().Context(), c.Param("id"), usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Images:      req.Images,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusOK, echo.Map{"product": p})
}

func (h *ProductHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return okDeleted(c, "Product successfully deleted")
}

// 商品一覧をxlsxでダウンロード
func (h *ProductHandler) export(c echo.Context) error {
	ps, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteProducts(&buf, ps); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=products.xlsx")
	return c.Blob(http.StatusOK, export.ProductsContentType, buf.Bytes())
}

func (h *ProductHandler) listReviews(c echo.Context) error {
	rs, err := h.reviews.ListByProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return okList(c, "reviews", rs, len(rs))
}

func (h *ProductHandler) createReview(c echo.Context) error {
	me, _ := middleware.CurrentUser(c)

	var req reviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	rv, err := h.reviews.Create(c.Request().Context(), me.ID, c.Param("id"), usecase.CreateReviewInput{
		Rating: req.Rating,
		Review: req.Review,
		Images: req.Images,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, http.StatusCreated, echo.Map{"review": rv})
}

func (h *ProductHandler) deleteReview(c echo.Context) error {
	me, _ := middleware.CurrentUser(c)

	if err := h.reviews.Delete(c.Request().Context(), me.ID, c.Param("id"), c.Param("reviewId")); err != nil {
		return writeError(c, err)
	}
	return okDeleted(c, "Review successfully deleted")
}
