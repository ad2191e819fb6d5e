package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/ireporter/internal/auth"
	"github.com/shenikar/ireporter/internal/config"
	v1 "github.com/shenikar/ireporter/internal/handler/http/v1"
	"github.com/shenikar/ireporter/internal/metrics"
	"github.com/shenikar/ireporter/internal/repository"
	"github.com/shenikar/ireporter/internal/service"
	"github.com/shenikar/ireporter/internal/webhook"
	"github.com/shenikar/ireporter/pkg/logger"
	redisclient "github.com/shenikar/ireporter/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/ireporter/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title iReporter API
// @version 1.0
// @description Red-flag incident reporting API with bearer-token authentication.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Издатель уведомлений о смене статуса
	var publisher webhook.WebhookPublisher
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = webhook.NewRedisWebhookPublisher(redisClient)

		// Инициализация и запуск воркера вебхуков
		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	} else {
		log.Warn("REDIS_ADDR is not set, status change notifications are only logged")
		publisher = webhook.NewLogWebhookPublisher(log)
	}

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository()
	userRepo := repository.NewUserRepository()

	// Токены и пароли
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, log, publisher)
	authService := service.NewAuthService(userRepo, tokens, hasher, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, authService, log)
	httpMetrics := metrics.New()

	// Настройка Gin роутера
	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestLogger(log), httpMetrics.Middleware())
	handler.RegisterRoutes(router)

	router.GET("/metrics", gin.WrapH(httpMetrics.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер вебхуков
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
