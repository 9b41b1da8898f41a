package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsfeed/internal/app"
	"newsfeed/internal/config"
	"newsfeed/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	bootLogger, err := utils.NewLogger(utils.DefaultLogConfig())
	if err != nil {
		panic(fmt.Sprintf("failed to build bootstrap logger: %v", err))
	}

	cfg, err := config.Load()
	if err != nil {
		bootLogger.Fatalf("failed to load config: %v", err)
	}

	wrapped, err := utils.NewLogger(&utils.LogConfig{
		Level:  utils.LogLevel(cfg.LogLevel),
		Format: utils.LogFormat(cfg.LogFormat),
		Output: cfg.LogOutput,
	})
	if err != nil {
		bootLogger.Fatalf("failed to build logger: %v", err)
	}
	logger := wrapped.Logger

	gin.SetMode(gin.ReleaseMode)

	wrapped.LogStartup("newsfeed", "1.0.0", cfg.Port)

	application := app.New(cfg, logger)

	if err := application.Start(context.Background()); err != nil {
		logger.Fatalf("failed to start background tasks: %v", err)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      application.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("server listening on port %d", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	wrapped.LogShutdown("newsfeed", "signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}

	application.Stop()

	logger.Info("server exited")
}
