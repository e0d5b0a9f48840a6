package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matthewbaird/dmtools/internal/doc"
	"github.com/matthewbaird/dmtools/internal/statblock"
	"github.com/matthewbaird/dmtools/internal/vault"
)

// ListNotes lists the indexed notes.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.index.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INDEX_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// NotePage renders every stat-block fence of a note into an HTML page. A
// fence that fails to parse renders an error block in its place; a bad
// fence never aborts the rest of the page.
func (h *Handler) NotePage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	data, err := h.vault.Read(name)
	if err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOTE_NOT_FOUND", name)
			return
		}
		writeError(w, http.StatusBadRequest, "BAD_NOTE", err.Error())
		return
	}

	var body strings.Builder
	for _, fence := range vault.Fences(string(data)) {
		b, err := statblock.Parse([]byte(fence.Source))
		if err != nil {
			body.WriteString(errorBlock(fence.Line, err).HTML())
			continue
		}
		body.WriteString(statblock.Render(b).HTML())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, doc.NewRoot("title").SetText(name).HTML(), body.String())
}

// errorBlock is the inline rendering of a fence that failed to parse.
func errorBlock(line int, err error) *doc.Node {
	block := doc.NewRoot("div", "dm-tools-statblock-error")
	block.Div("dm-tools-statblock-error-title").SetText(fmt.Sprintf("Invalid stat block (line %d)", line+1))
	block.El("pre").SetText(err.Error())
	return block
}

// pageShell wraps rendered blocks in a minimal document; styling belongs to
// the stylesheet that targets the block classes.
const pageShell = `<!doctype html>
<html>
<head><meta charset="utf-8">%s<link rel="stylesheet" href="/static/dm-tools.css"></head>
<body>%s<script>
new WebSocket("ws://" + location.host + "/ws").onmessage = () => location.reload();
</script></body>
</html>
`
