package usecase_test

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos
// =====================

// WithinTx の中で渡す repos を固定して回す
type TxManagerMock struct {
	mock.Mock
	Repos *TxReposMock
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	users        repo.UserRepository
	deletedUsers repo.DeletedUserRepository
	categories   repo.CategoryRepository
	products     repo.ProductRepository
	inventory    repo.InventoryRepository
	orders       repo.OrderRepository
	deliveries   repo.DeliveryRepository
	auditLogs    repo.AuditLogRepository
}

func (r *TxReposMock) Users() repo.UserRepository               { return r.users }
func (r *TxReposMock) DeletedUsers() repo.DeletedUserRepository { return r.deletedUsers }
func (r *TxReposMock) Categories() repo.CategoryRepository      { return r.categories }
func (r *TxReposMock) Products() repo.ProductRepository         { return r.products }
func (r *TxReposMock) Inventory() repo.InventoryRepository      { return r.inventory }
func (r *TxReposMock) Orders() repo.OrderRepository             { return r.orders }
func (r *TxReposMock) Deliveries() repo.DeliveryRepository      { return r.deliveries }
func (r *TxReposMock) AuditLogs() repo.AuditLogRepository       { return r.auditLogs }

// =====================
// Repository mocks
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, u *model.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]model.User)
	return us, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ExistsByEmailOrPhone(ctx context.Context, email string, phone string, excludeID string) (bool, error) {
	args := m.Called(ctx, email, phone, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, u *model.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type DeletedUserRepoMock struct{ mock.Mock }

func (m *DeletedUserRepoMock) Create(ctx context.Context, d *model.DeletedUser) error {
	return m.Called(ctx, d).Error(0)
}

func (m *DeletedUserRepoMock) List(ctx context.Context) ([]model.DeletedUser, error) {
	args := m.Called(ctx)
	ds, _ := args.Get(0).([]model.DeletedUser)
	return ds, args.Error(1)
}

func (m *DeletedUserRepoMock) FindByID(ctx context.Context, id string) (*model.DeletedUser, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*model.DeletedUser)
	return d, args.Error(1)
}

func (m *DeletedUserRepoMock) UpdateReason(ctx context.Context, id string, reason string) error {
	return m.Called(ctx, id, reason).Error(0)
}

func (m *DeletedUserRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) Create(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CategoryRepoMock) CreateMany(ctx context.Context, cs []model.Category) error {
	return m.Called(ctx, cs).Error(0)
}

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]model.Category)
	return cs, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) FindByName(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) FindByNames(ctx context.Context, names []string) ([]model.Category, error) {
	args := m.Called(ctx, names)
	cs, _ := args.Get(0).([]model.Category)
	return cs, args.Error(1)
}

func (m *CategoryRepoMock) Update(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CategoryRepoMock) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepoMock) CreateMany(ctx context.Context, ps []model.Product) error {
	return m.Called(ctx, ps).Error(0)
}

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID string, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) Upsert(ctx context.Context, c *model.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CartRepoMock) Save(ctx context.Context, c *model.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CartRepoMock) List(ctx context.Context) ([]model.Cart, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]model.Cart)
	return cs, args.Error(1)
}

func (m *CartRepoMock) FindByID(ctx context.Context, id string) (*model.Cart, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByUserID(ctx context.Context, userID string) (*model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o *model.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *OrderRepoMock) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	os, _ := args.Get(0).([]model.Order)
	return os, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	os, _ := args.Get(0).([]model.Order)
	return os, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, id string, patch repo.OrderStatusPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type DeliveryRepoMock struct{ mock.Mock }

func (m *DeliveryRepoMock) Create(ctx context.Context, d *model.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *DeliveryRepoMock) List(ctx context.Context) ([]model.Delivery, error) {
	args := m.Called(ctx)
	ds, _ := args.Get(0).([]model.Delivery)
	return ds, args.Error(1)
}

func (m *DeliveryRepoMock) FindByID(ctx context.Context, id string) (*model.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*model.Delivery)
	return d, args.Error(1)
}

func (m *DeliveryRepoMock) UpdateStatus(ctx context.Context, id string, status model.DeliveryStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *DeliveryRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *AuditRepoMock) List(ctx context.Context, q repo.AuditQuery) (repo.AuditPage, error) {
	args := m.Called(ctx, q)
	page, _ := args.Get(0).(repo.AuditPage)
	return page, args.Error(1)
}

func (m *AuditRepoMock) History(ctx context.Context, resourceType model.AuditResourceType, resourceID string) ([]model.AuditLog, error) {
	args := m.Called(ctx, resourceType, resourceID)
	ls, _ := args.Get(0).([]model.AuditLog)
	return ls, args.Error(1)
}

// =====================
// その他
// =====================

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	return m.Called(ctx, routingKey, payload).Error(0)
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

var (
	_ repo.UserRepository        = (*UserRepoMock)(nil)
	_ repo.DeletedUserRepository = (*DeletedUserRepoMock)(nil)
	_ repo.CategoryRepository    = (*CategoryRepoMock)(nil)
	_ repo.ProductRepository     = (*ProductRepoMock)(nil)
	_ repo.InventoryRepository   = (*InventoryRepoMock)(nil)
	_ repo.CartRepository        = (*CartRepoMock)(nil)
	_ repo.OrderRepository       = (*OrderRepoMock)(nil)
	_ repo.DeliveryRepository    = (*DeliveryRepoMock)(nil)
	_ repo.AuditLogRepository    = (*AuditRepoMock)(nil)
	_ repo.TransactionManager    = (*TxManagerMock)(nil)
)

type AdminRepoMock struct{ mock.Mock }

func (m *AdminRepoMock) Create(ctx context.Context, a *model.Admin) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AdminRepoMock) List(ctx context.Context) ([]model.Admin, error) {
	args := m.Called(ctx)
	as, _ := args.Get(0).([]model.Admin)
	return as, args.Error(1)
}

func (m *AdminRepoMock) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.Admin)
	return a, args.Error(1)
}

func (m *AdminRepoMock) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*model.Admin)
	return a, args.Error(1)
}

func (m *AdminRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.AdminRepository = (*AdminRepoMock)(nil)

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) Create(ctx context.Context, r *model.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *ReviewRepoMock) ListByProductID(ctx context.Context, productID string) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	rs, _ := args.Get(0).([]model.Review)
	return rs, args.Error(1)
}

func (m *ReviewRepoMock) FindByID(ctx context.Context, id string) (*model.Review, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Review)
	return r, args.Error(1)
}

func (m *ReviewRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ReviewRepository = (*ReviewRepoMock)(nil)
