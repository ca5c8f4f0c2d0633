package db

import (
	"errors"

	"github.com/tsizion/DokaBackend/internal/config"
	"github.com/tsizion/DokaBackend/internal/domain/model"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 設定にSuper Adminがあり、まだいなければ作る
func SeedSuperAdmin(db *gorm.DB, cfg config.Config, hasher PasswordHasher) error {
	if cfg.SuperAdminEmail == "" || cfg.SuperAdminPassword == "" {
		log.Info("super admin seed skipped")
		return nil
	}

	var existing model.Admin
	err := db.Where("LOWER(email) = LOWER(?)", cfg.SuperAdminEmail).First(&existing).Error
	if err == nil {
		log.Infof("super admin already exists: %s", existing.Email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := hasher.Hash(cfg.SuperAdminPassword)
	if err != nil {
		return err
	}

	admin := model.Admin{
		FirstName:    cfg.SuperAdminFirstName,
		LastName:     cfg.SuperAdminLastName,
		Email:        cfg.SuperAdminEmail,
		PasswordHash: hash,
		Role:         model.AdminRoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Infof("super admin seeded: %s (ID: %s)", admin.Email, admin.ID)
	return nil
}
