package repository

import (
	"context"

	repo "github.com/tsizion/DokaBackend/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	users        repo.UserRepository
	deletedUsers repo.DeletedUserRepository
	categories   repo.CategoryRepository
	products     repo.ProductRepository
	inventory    repo.InventoryRepository
	orders       repo.OrderRepository
	deliveries   repo.DeliveryRepository
	auditLogs    repo.AuditLogRepository
}

func (r *txReposGorm) Users() repo.UserRepository               { return r.users }
func (r *txReposGorm) DeletedUsers() repo.DeletedUserRepository { return r.deletedUsers }
func (r *txReposGorm) Categories() repo.CategoryRepository      { return r.categories }
func (r *txReposGorm) Products() repo.ProductRepository         { return r.products }
func (r *txReposGorm) Inventory() repo.InventoryRepository      { return r.inventory }
func (r *txReposGorm) Orders() repo.OrderRepository             { return r.orders }
func (r *txReposGorm) Deliveries() repo.DeliveryRepository      { return r.deliveries }
func (r *txReposGorm) AuditLogs() repo.AuditLogRepository       { return r.auditLogs }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			users:        NewUserGormRepository(tx),
			deletedUsers: NewDeletedUserGormRepository(tx),
			categories:   NewCategoryGormRepository(tx),
			products:     NewProductGormRepository(tx),
			inventory:    NewInventoryGormRepository(tx),
			orders:       NewOrderGormRepository(tx),
			deliveries:   NewDeliveryGormRepository(tx),
			auditLogs:    NewAuditLogGormRepository(tx),
		}
		return fn(r)
	})
}
