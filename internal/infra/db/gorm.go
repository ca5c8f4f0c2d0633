package db

import (
	"time"

	"github.com/tsizion/DokaBackend/internal/config"
	"github.com/tsizion/DokaBackend/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はPostgresに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	db, err := Open(postgres.Open(cfg.DSN()), cfg.IsProduction())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Open はdialectorを問わず共通の設定で開く（テストではsqlite）
func Open(dialector gorm.Dialector, quiet bool) (*gorm.DB, error) {
	level := logger.Warn
	if quiet {
		level = logger.Error
	}
	return gorm.Open(dialector, &gorm.Config{
		// 参照はIDだけ。外部キー制約は張らない
		DisableForeignKeyConstraintWhenMigrating: true,
		// 一意制約違反を gorm.ErrDuplicatedKey にそろえる
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
}

// 全コレクションのテーブルを作る
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Admin{},
		&model.Category{},
		&model.Product{},
		&model.Review{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Delivery{},
		&model.DeletedUser{},
		&model.AuditLog{},
	)
}
