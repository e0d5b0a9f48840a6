package handler

import (
	"errors"
	"net/http"

	"github.com/matthewbaird/dmtools/internal/callout"
	"github.com/matthewbaird/dmtools/internal/statblock"
	"github.com/matthewbaird/dmtools/internal/vault"
)

// insertRequest is the body of POST /api/insert.
type insertRequest struct {
	Note string `json:"note"`
	Kind string `json:"kind"` // an entity kind, or "statblock" for the sample record
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

// Insert splices a block template (or the sample stat block) into a note at
// a cursor position.
func (h *Handler) Insert(w http.ResponseWriter, r *http.Request) {
	var req insertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	block, ok := blockFor(h.kinds, req.Kind)
	if !ok {
		writeError(w, http.StatusNotFound, "UNKNOWN_KIND", "no such block kind: "+req.Kind)
		return
	}

	if err := h.vault.InsertAt(req.Note, req.Line, req.Col, block); err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOTE_NOT_FOUND", req.Note)
			return
		}
		writeError(w, http.StatusInternalServerError, "INSERT_FAILED", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"note": req.Note, "kind": req.Kind})
}

// blockFor resolves the text block for a kind name. "statblock" is the
// sample creature record; everything else is an entity-kind template.
func blockFor(kinds *callout.Registry, name string) (string, bool) {
	if name == "statblock" {
		return statblock.Sample, true
	}
	k, ok := kinds.Kind(name)
	if !ok {
		return "", false
	}
	return callout.Generate(k), true
}
