package db_test

import (
	"testing"

	"github.com/tsizion/DokaBackend/internal/config"
	"github.com/tsizion/DokaBackend/internal/domain/model"
	"github.com/tsizion/DokaBackend/internal/infra/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

type countingHasher struct{ n int }

func (h *countingHasher) Hash(s string) (string, error) {
	h.n++
	return "hashed:" + s, nil
}

func TestSeedSuperAdmin(t *testing.T) {
	gdb, err := db.Open(sqlite.Open("file:seed_test?mode=memory&cache=shared"), true)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	cfg := config.Config{
		SuperAdminEmail:     "root@doka.test",
		SuperAdminPassword:  "rootpass123",
		SuperAdminFirstName: "Root",
		SuperAdminLastName:  "Admin",
	}
	h := &countingHasher{}

	require.NoError(t, db.SeedSuperAdmin(gdb, cfg, h))
	//2回目は何もしない
	cfg.SuperAdminEmail = "ROOT@doka.test"
	require.NoError(t, db.SeedSuperAdmin(gdb, cfg, h))

	var admins []model.Admin
	require.NoError(t, gdb.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, model.AdminRoleSuperAdmin, admins[0].Role)
	assert.Equal(t, "hashed:rootpass123", admins[0].PasswordHash)
	assert.Equal(t, 1, h.n)
}

func TestSeedSuperAdmin_SkippedWithoutCredentials(t *testing.T) {
	gdb, err := db.Open(sqlite.Open("file:seed_skip_test?mode=memory&cache=shared"), true)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	require.NoError(t, db.SeedSuperAdmin(gdb, config.Config{}, &countingHasher{}))

	var n int64
	require.NoError(t, gdb.Model(&model.Admin{}).Count(&n).Error)
	assert.Zero(t, n)
}
