// Package handler implements the preview server's HTTP surface.
package handler

import (
	"github.com/matthewbaird/dmtools/internal/callout"
	"github.com/matthewbaird/dmtools/internal/index"
	"github.com/matthewbaird/dmtools/internal/reload"
	"github.com/matthewbaird/dmtools/internal/vault"
)

// Handler carries the dependencies shared by all routes.
type Handler struct {
	vault *vault.Vault
	index index.Store
	hub   *reload.Hub
	kinds *callout.Registry
}

// New creates a Handler.
func New(v *vault.Vault, store index.Store, hub *reload.Hub, kinds *callout.Registry) *Handler {
	return &Handler{
		vault: v,
		index: store,
		hub:   hub,
		kinds: kinds,
	}
}
