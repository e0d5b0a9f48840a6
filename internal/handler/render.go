package handler

import (
	"io"
	"net/http"

	"github.com/matthewbaird/dmtools/internal/statblock"
)

// RenderStatBlock renders a raw stat-block JSON body to an HTML fragment.
// Parse failures are the caller's to surface, so they come back as a 422
// with the parse error text rather than a partial render.
func (h *Handler) RenderStatBlock(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	src, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "READ_ERROR", err.Error())
		return
	}

	b, err := statblock.Parse(src)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "PARSE_ERROR", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(statblock.Render(b).HTML()))
}

// kindInfo is the JSON shape of one entity kind in the /api/kinds listing.
type kindInfo struct {
	Kind        string   `json:"kind"`
	CommandID   string   `json:"command_id"`
	CommandName string   `json:"command_name"`
	Fields      []string `json:"fields"`
	Headers     []string `json:"headers"`
}

// ListKinds lists the compiled-in entity kinds and their insert commands.
func (h *Handler) ListKinds(w http.ResponseWriter, r *http.Request) {
	names := h.kinds.Names()
	out := make([]kindInfo, 0, len(names))
	for _, name := range names {
		k, _ := h.kinds.Kind(name)
		out = append(out, kindInfo{
			Kind:        k.Name,
			CommandID:   k.CommandID(),
			CommandName: k.CommandName(),
			Fields:      k.Fields,
			Headers:     k.Headers,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
