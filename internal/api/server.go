package api

import (
	"context"
	"log"

	"commissions/internal/app/config"
	"commissions/internal/app/dsn"
	"commissions/internal/app/handler"
	"commissions/internal/app/middleware"
	appRedis "commissions/internal/app/redis"
	"commissions/internal/app/repository"
	"commissions/internal/app/service"
	"commissions/internal/app/storage"
	"commissions/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	log.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("failed to parse config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("failed to init repository: %v", err)
	}

	redisClient, err := appRedis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatalf("failed to connect to redis: %v", err)
	}

	store, err := newFileStore(cfg)
	if err != nil {
		logrus.Fatalf("failed to init file storage: %v", err)
	}

	orders := service.NewOrderService(repo, store)
	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, orders, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()

	app := pkg.NewApp(cfg, router, apiHandler, authMiddleware)
	app.RunApp()

	log.Println("Server down")
}

// newFileStore выбирает хранилище референсов по конфигурации
func newFileStore(cfg *config.Config) (storage.FileStore, error) {
	if cfg.Storage.Mode == "minio" {
		return storage.NewMinIOStore(
			cfg.Storage.MinioEndpoint,
			cfg.Storage.MinioAccessKey,
			cfg.Storage.MinioSecretKey,
			cfg.Storage.MinioBucket,
			cfg.Storage.MinioUseSSL,
		)
	}
	return storage.NewDiskStore(cfg.Storage.UploadDir), nil
}
