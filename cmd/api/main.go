package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/Sanketkadam3921/financial-dashboard/internal/analytics"
	"github.com/Sanketkadam3921/financial-dashboard/internal/auth"
	"github.com/Sanketkadam3921/financial-dashboard/internal/config"
	"github.com/Sanketkadam3921/financial-dashboard/internal/database"
	apiHttp "github.com/Sanketkadam3921/financial-dashboard/internal/http"
	authHandler "github.com/Sanketkadam3921/financial-dashboard/internal/http/auth"
	txHandler "github.com/Sanketkadam3921/financial-dashboard/internal/http/transaction"
	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
	txStore "github.com/Sanketkadam3921/financial-dashboard/internal/transaction/store"
	"github.com/Sanketkadam3921/financial-dashboard/internal/user"
	userStore "github.com/Sanketkadam3921/financial-dashboard/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := txStore.New(db)

	var (
		transactionService = transaction.NewService(store)
		analyticsService   = analytics.NewService(store)
		userService        = user.NewService(userStore.New(db), cfg.Auth.BcryptCost)
		tokenManager       = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	)

	router := apiHttp.New(
		authHandler.NewHandler(userService, tokenManager),
		txHandler.NewHandler(transactionService, analyticsService),
		tokenManager,
		cfg.CORS.Origin,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
