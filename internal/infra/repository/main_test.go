package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	"github.com/tsizion/DokaBackend/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// テストごとに別のインメモリDB
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := db.Open(sqlite.Open(dsn), true)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedCategory(t *testing.T, gdb *gorm.DB, name string) model.Category {
	t.Helper()
	c := model.Category{Name: name, Description: name + " desc"}
	require.NoError(t, gdb.WithContext(context.Background()).Create(&c).Error)
	return c
}

func seedProduct(t *testing.T, gdb *gorm.DB, categoryID string, name string, price string, stock int64) model.Product {
	t.Helper()
	p := model.Product{
		Name:        name,
		Description: name + " desc",
		CategoryID:  categoryID,
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		Images:      []string{},
	}
	require.NoError(t, gdb.Omit("Category").Create(&p).Error)
	return p
}

func seedUser(t *testing.T, gdb *gorm.DB, email string, phone string) model.User {
	t.Helper()
	u := model.User{
		FullName:     "Test User",
		Email:        email,
		PasswordHash: "hash",
		PhoneNumber:  phone,
		Address:      []string{"Addis Ababa"},
		Status:       model.UserStatusActive,
	}
	require.NoError(t, gdb.Create(&u).Error)
	return u
}
