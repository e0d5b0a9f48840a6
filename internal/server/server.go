// Package server assembles the preview server: routes, vault scanning, and
// the live-reload pipeline.
package server

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matthewbaird/dmtools/internal/callout"
	"github.com/matthewbaird/dmtools/internal/handler"
	"github.com/matthewbaird/dmtools/internal/index"
	"github.com/matthewbaird/dmtools/internal/reload"
	"github.com/matthewbaird/dmtools/internal/vault"
)

//go:embed static
var staticFS embed.FS

// Config holds server configuration.
type Config struct {
	Port  int
	Vault *vault.Vault
	Index index.Store
}

// Run scans the vault, starts the watcher and reload hub, and serves until
// the context is cancelled.
func Run(ctx context.Context, cfg Config) error {
	if err := Scan(ctx, cfg.Vault, cfg.Index); err != nil {
		return fmt.Errorf("initial vault scan: %w", err)
	}

	hub := reload.NewHub(64)
	hub.Start(ctx)

	watcher, err := vault.NewWatcher(cfg.Vault)
	if err != nil {
		return fmt.Errorf("starting vault watcher: %w", err)
	}
	go watcher.Run(ctx)
	go relay(ctx, cfg, watcher, hub)

	h := handler.New(cfg.Vault, cfg.Index, hub, callout.Default())
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/notes", h.ListNotes)
	r.Get("/api/kinds", h.ListKinds)
	r.Post("/api/render", h.RenderStatBlock)
	r.Post("/api/insert", h.Insert)
	r.Get("/notes/*", h.NotePage)
	r.Get("/ws", h.LiveReload)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	wrapped := handler.Recovery(handler.Logging(r))

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("starting preview server on %s (vault %s)", addr, cfg.Vault.Root())

	srv := &http.Server{
		Addr:    addr,
		Handler: wrapped,
	}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// relay keeps the index current and fans watcher changes out to preview
// clients.
func relay(ctx context.Context, cfg Config, watcher *vault.Watcher, hub *reload.Hub) {
	for {
		select {
		case <-ctx.Done():
			return
		case note, ok := <-watcher.Changes():
			if !ok {
				return
			}
			if err := ScanNote(ctx, cfg.Vault, cfg.Index, note); err != nil {
				log.Printf("rescanning %s: %v", note, err)
			}
			hub.Publish(reload.Message{Type: "reload", Note: note})
		}
	}
}
