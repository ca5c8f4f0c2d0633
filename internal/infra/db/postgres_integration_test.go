//go:build integration

package db_test

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tsizion/DokaBackend/internal/config"
	"github.com/tsizion/DokaBackend/internal/domain/model"
	"github.com/tsizion/DokaBackend/internal/infra/db"
	infraRepo "github.com/tsizion/DokaBackend/internal/infra/repository"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type plainHasher struct{}

func (plainHasher) Hash(s string) (string, error) { return "x" + s, nil }

func setupPostgres(t *testing.T) (*gorm.DB, config.Config) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "doka",
			"POSTGRES_PASSWORD": "doka",
			"POSTGRES_DB":       "doka_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pg.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432")
	require.NoError(t, err)
	portNum, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	cfg := config.Config{
		GoEnv:               "test",
		PostgresHost:        host,
		PostgresPort:        portNum,
		PostgresUser:        "doka",
		PostgresPassword:    "doka",
		PostgresDB:          "doka_test",
		PostgresSSLMode:     "disable",
		SuperAdminEmail:     "root@doka.test",
		SuperAdminPassword:  "rootpass123",
		SuperAdminFirstName: "Root",
		SuperAdminLastName:  "Admin",
	}

	gdb, err := db.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb, cfg
}

func TestPostgres_SeedIsIdempotent(t *testing.T) {
	gdb, cfg := setupPostgres(t)

	require.NoError(t, db.SeedSuperAdmin(gdb, cfg, plainHasher{}))
	require.NoError(t, db.SeedSuperAdmin(gdb, cfg, plainHasher{}))

	var n int64
	require.NoError(t, gdb.Model(&model.Admin{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestPostgres_ConcurrentStockDecrement(t *testing.T) {
	ctx := context.Background()
	gdb, _ := setupPostgres(t)

	c := model.Category{Name: "Phones"}
	require.NoError(t, gdb.Create(&c).Error)
	p := model.Product{Name: "Pixel", Description: "d", CategoryID: c.ID, Price: decimal.NewFromInt(10), Stock: 5, Images: []string{}}
	require.NoError(t, gdb.Omit("Category").Create(&p).Error)

	inv := infraRepo.NewInventoryGormRepository(gdb)

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := inv.DecreaseStockIfEnough(ctx, p.ID, 1)
			if assert.NoError(t, err) && ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), wins)

	got, err := infraRepo.NewProductGormRepository(gdb).FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Stock)
}

func TestPostgres_UniqueEmailMapsToDuplicate(t *testing.T) {
	ctx := context.Background()
	gdb, _ := setupPostgres(t)
	users := infraRepo.NewUserGormRepository(gdb)

	u := model.User{FullName: "a", Email: "a@example.com", PasswordHash: "h", PhoneNumber: "1", Status: model.UserStatusActive}
	require.NoError(t, users.Create(ctx, &u))

	dup := model.User{FullName: "b", Email: "a@example.com", PasswordHash: "h", PhoneNumber: "2", Status: model.UserStatusActive}
	assert.ErrorIs(t, users.Create(ctx, &dup), repo.ErrDuplicate)
}

func TestPostgres_ConcurrentFirstCartUpsert(t *testing.T) {
	ctx := context.Background()
	gdb, _ := setupPostgres(t)

	u := model.User{FullName: "a", Email: "cart@example.com", PasswordHash: "h", PhoneNumber: "1", Status: model.UserStatusActive}
	require.NoError(t, gdb.Create(&u).Error)

	carts := infraRepo.NewCartGormRepository(gdb)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cart := &model.Cart{UserID: u.ID, TotalPrice: decimal.Zero}
			assert.NoError(t, carts.Upsert(ctx, cart))
		}()
	}
	wg.Wait()

	var n int64
	require.NoError(t, gdb.Model(&model.Cart{}).Where("user_id = ?", u.ID).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
