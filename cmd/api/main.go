package main

import (
	"github.com/tsizion/DokaBackend/internal/config"
	"github.com/tsizion/DokaBackend/internal/handler"
	"github.com/tsizion/DokaBackend/internal/infra/db"
	"github.com/tsizion/DokaBackend/internal/infra/mq"
	infraRepo "github.com/tsizion/DokaBackend/internal/infra/repository"
	"github.com/tsizion/DokaBackend/internal/server"
	"github.com/tsizion/DokaBackend/internal/usecase"
	auth "github.com/tsizion/DokaBackend/internal/usecase/auth_usecase"

	"github.com/labstack/gommon/log"
)

type publisher interface {
	usecase.EventPublisher
	Close() error
}

func logLevel(s string) log.Lvl {
	switch s {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.SetLevel(logLevel(cfg.LogLevel))

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	//bcrypt（作成：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	verifier := auth.NewBcryptPasswordVerifier()

	if err := db.SeedSuperAdmin(gormDB, cfg, hasher); err != nil {
		log.Fatalf("seed: %v", err)
	}

	//URLがなければイベントは捨てる
	var pub publisher = mq.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		p, err := mq.NewPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		pub = p
	}
	defer pub.Close()

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	adminRepo := infraRepo.NewAdminGormRepository(gormDB)
	deletedRepo := infraRepo.NewDeletedUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	deliveryRepo := infraRepo.NewDeliveryGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	issuer := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)
	loginUC := auth.NewLoginUsecase(userRepo, adminRepo, verifier, issuer, auth.SystemClock{})
	userUC := usecase.NewUserUsecase(userRepo, txm, hasher, pub)
	adminUC := usecase.NewAdminUsecase(adminRepo, auditRepo, hasher)
	deletedUC := usecase.NewDeletedUserUsecase(deletedRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, txm)
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, txm)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, productRepo, txm, pub, cfg.OrderReserveStock)
	deliveryUC := usecase.NewDeliveryUsecase(deliveryRepo, orderRepo, txm)

	//Handler生成
	srv := server.New(cfg, gormDB, server.Handlers{
		Guards:       handler.NewGuards(cfg, userRepo, adminRepo),
		Auth:         handler.NewAuthHandler(loginUC),
		Users:        handler.NewUserHandler(userUC),
		Admins:       handler.NewAdminHandler(adminUC),
		DeletedUsers: handler.NewDeletedUserHandler(deletedUC),
		Categories:   handler.NewCategoryHandler(categoryUC),
		Products:     handler.NewProductHandler(productUC, reviewUC),
		Carts:        handler.NewCartHandler(cartUC),
		Orders:       handler.NewOrderHandler(orderUC),
		Deliveries:   handler.NewDeliveryHandler(deliveryUC),
	})

	//Server起動
	if err := srv.Start(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
