package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"popcornhour/config"
	"popcornhour/handlers"
	"popcornhour/logger"
)

func main() {
	// Load environment variables
	cfg := config.Load()

	if err := logger.InitLogger(logger.ParseLevel(cfg.LogLevel), cfg.LogFile); err != nil {
		logger.Error("init logger:", err)
		os.Exit(1)
	}
	defer logger.CloseLogger()

	if cfg.UsingDefaultSecret() {
		logger.Warning("SECRET_KEY is not set, sessions and tokens are signed with the development key")
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Error("init database:", err)
		os.Exit(1)
	}

	router, err := handlers.NewRouter(cfg, db)
	if err != nil {
		logger.Error("init router:", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen:", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown:", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
