package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"essenza/internal/catalog"
	"essenza/internal/config"
	"essenza/internal/infrastructure/logger"
	"essenza/internal/order"
	"essenza/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	catalogCtrl, catalogSvc := catalog.NewModule(cfg.Catalog.Path, zapLogger)
	orderCtrl, orderRepo := order.NewModule(cfg, catalogSvc, zapLogger)

	if err := orderRepo.EnsureStore(context.Background()); err != nil {
		zapLogger.Fatal("preparing order store", zap.Error(err))
	}
	zapLogger.Info("order store ready", zap.String("path", cfg.Store.Path))

	router := server.NewRouter(catalogCtrl, orderCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
