// Package main starts the Focus Catcher API server: configuration,
// logging, database, repositories, services and HTTP routes.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/tomz197/focuscatcher/internal/config"
	"github.com/tomz197/focuscatcher/internal/db"
	"github.com/tomz197/focuscatcher/internal/logger"
	"github.com/tomz197/focuscatcher/internal/repository"
	"github.com/tomz197/focuscatcher/internal/server/handler/http"
	"github.com/tomz197/focuscatcher/internal/service"
)

func main() {
	cfg, err := config.ParseServer()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	l := logger.New()
	if err := l.Init(cfg.LogLevel); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = l.Log.Sync() }()
	zapLogger := l.Log

	postgres, err := db.InitPostgres(cfg.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer postgres.Close()

	userRepo := repository.NewPostgresUserRepository(postgres)
	resultRepo := repository.NewPostgresResultRepository(postgres)

	userService := service.NewUserService(userRepo)
	resultService := service.NewResultService(resultRepo)

	userHandler := &http.UserHandler{UserService: userService}
	resultHandler := &http.ResultHandler{ResultService: resultService}

	router := http.NewRouter(userHandler, resultHandler, zapLogger)

	srv := &nethttp.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zapLogger.Info("starting API server", zap.String("addr", cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-done
	zapLogger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("shutdown error", zap.Error(err))
	}
}
