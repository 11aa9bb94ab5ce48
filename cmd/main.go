package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	v1 "github.com/shenikar/road_obstacles/internal/handler/http/v1"
	"github.com/shenikar/road_obstacles/internal/service"
	"github.com/shenikar/road_obstacles/pkg/logger"

	_ "github.com/shenikar/road_obstacles/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Road Obstacles API
// @version 1.0
// @description Roadway obstacle log and emergency contact directory.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "road_obstacles",
		Short: "Roadway obstacle log and emergency contact directory",
		Long: `road_obstacles records roadway obstacles met along a route, with optional
GPS coordinates, and keeps a directory of emergency and utility contacts.
All data lives in a local key-value store selected by STORAGE_DRIVER.`,
		SilenceUsage: true,
		// Без подкоманды запускаем сервер
		RunE: runServe,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		newObstaclesCmd(),
		newContactsCmd(),
	)
	return rootCmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, os.Stdout)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к хранилищу
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Error("Failed to open storage")
		return err
	}
	defer closeStore()
	log.WithField("driver", cfg.StorageDriver).Info("Storage opened")

	// Инициализация сервисов
	storageService := service.NewStorageService(store, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(storageService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	// Запуск сервера в горутине
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	select {
	case err := <-serveErr:
		log.WithError(err).Error("Error starting HTTP server")
		return err
	case <-ctx.Done():
		log.Info("Received shutdown signal, shutting down server...")
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return err
	}

	log.Info("Server gracefully stopped")
	return nil
}
