// Command seed loads transaction fixtures from a CSV file into the store.
// Transactions only enter the collection through this path; the HTTP API is
// read-only over them.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sanketkadam3921/financial-dashboard/internal/config"
	"github.com/Sanketkadam3921/financial-dashboard/internal/database"
	"github.com/Sanketkadam3921/financial-dashboard/internal/importer"
	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
	txStore "github.com/Sanketkadam3921/financial-dashboard/internal/transaction/store"
)

const seedTimeout = 2 * time.Minute

func main() {
	file := flag.String("file", "", "path to the transactions CSV file")
	flag.Parse()

	if *file == "" {
		slog.Error("missing -file flag")
		os.Exit(1)
	}

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

	f, err := os.Open(*file)
	if err != nil {
		slog.Error("failed to open fixture file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	txs, err := importer.NewParser().Parse(f)
	if err != nil {
		slog.Error("failed to parse fixture file", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	svc := transaction.NewService(txStore.New(db))
	if err := svc.CreateBatch(ctx, txs); err != nil {
		slog.Error("failed to insert transactions", "error", err)
		os.Exit(1)
	}

	slog.Info("seed complete", "file", *file, "transactions", len(txs))
}
