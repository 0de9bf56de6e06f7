package main

import (
	"context"
	"log"

	"github.com/ninjaCoderr/social-app-backend/config"
	"github.com/ninjaCoderr/social-app-backend/internal/handler"
	appredis "github.com/ninjaCoderr/social-app-backend/internal/redis"
	"github.com/ninjaCoderr/social-app-backend/internal/repository"
	"github.com/ninjaCoderr/social-app-backend/internal/server"
	"github.com/ninjaCoderr/social-app-backend/internal/services"
	"github.com/ninjaCoderr/social-app-backend/internal/storage"
	"github.com/ninjaCoderr/social-app-backend/pkg/database"
	"github.com/ninjaCoderr/social-app-backend/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	// Connect to Database
	database.Connect(cfg)

	storageClient, err := storage.NewClient(context.Background(), storage.S3Config{
		Region:     cfg.S3Region,
		Bucket:     cfg.S3Bucket,
		AccessKey:  cfg.S3AccessKey,
		SecretKey:  cfg.S3SecretKey,
		Endpoint:   cfg.S3Endpoint,
		PublicHost: cfg.StoragePublicHost,
	})
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	accountRepo := repository.NewAccountRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)
	likeRepo := repository.NewLikeRepository(database.DB)

	authService := services.NewAuthService(accountRepo, userRepo, cfg)
	userService := services.NewUserService(userRepo, likeRepo, storageClient)

	redisClient := appredis.NewClient(appredis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	limiter := appredis.NewRateLimiter(redisClient, appredis.DefaultRateLimitConfig())

	handlers := &server.Handlers{
		Auth: handler.NewAuthHandler(authService, l),
		User: handler.NewUserHandler(userService, l),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, authService, userRepo, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
