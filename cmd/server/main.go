package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"comanda/internal/client"
	"comanda/internal/commons"
	"comanda/internal/config"
	"comanda/internal/infrastructure/logger"
	"comanda/internal/infrastructure/mysql"
	"comanda/internal/order"
	"comanda/internal/server"
)

func main() {
	// Best effort: a missing .env just means the environment is already set.
	_ = godotenv.Load()

	var (
		cfg *config.Config
		err error
	)
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		cfg, err = commons.LoadConfig(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	if err := mysql.EnsureSchema(context.Background(), db); err != nil {
		zapLogger.Fatal("preparing schema", zap.Error(err))
	}
	zapLogger.Info("database connected")

	clientCtrl := client.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, zapLogger)

	router := server.NewRouter(clientCtrl, orderCtrl, cfg.Server.StaticDir, zapLogger)

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
