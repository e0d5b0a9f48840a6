// cmd/server runs the vault preview server: it renders the stat-block
// fences of markdown notes to HTML and pushes live-reload notifications
// when notes change.
package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	_ "modernc.org/sqlite"

	"github.com/matthewbaird/dmtools/internal/index"
	"github.com/matthewbaird/dmtools/internal/server"
	"github.com/matthewbaird/dmtools/internal/vault"
)

type config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	VaultDir string `env:"VAULT_DIR" envDefault:"."`
	// DatabaseURL selects the sqlite note index; empty keeps the index
	// in memory.
	DatabaseURL string `env:"DATABASE_URL"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parsing environment: %v", err)
	}

	v, err := vault.Open(cfg.VaultDir)
	if err != nil {
		log.Fatalf("opening vault: %v", err)
	}

	var store index.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("opening database: %v", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(1)

		ss := index.NewSQLiteStore(db)
		if err := ss.CreateTable(ctx); err != nil {
			log.Fatalf("running index migration: %v", err)
		}
		store = ss
		log.Println("note index backed by sqlite")
	} else {
		store = index.NewMemoryStore()
	}

	if err := server.Run(ctx, server.Config{
		Port:  cfg.Port,
		Vault: v,
		Index: store,
	}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
