package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewbaird/dmtools/internal/callout"
	"github.com/matthewbaird/dmtools/internal/index"
	"github.com/matthewbaird/dmtools/internal/reload"
	"github.com/matthewbaird/dmtools/internal/statblock"
	"github.com/matthewbaird/dmtools/internal/vault"
)

const goblinJSON = `{
	"name": "Goblin",
	"size": "small",
	"creatureType": "humanoid",
	"alignment": "neutral evil",
	"ac": 15,
	"hp": 7,
	"speed": "30 ft.",
	"challenge": "1/4",
	"abilityScores": {
		"strength": 8, "dexterity": 14, "constitution": 10,
		"intelligence": 10, "wisdom": 8, "charisma": 8
	}
}`

func testServer(t *testing.T) (*vault.Vault, index.Store, *httptest.Server) {
	t.Helper()
	v, err := vault.Open(t.TempDir())
	require.NoError(t, err)

	store := index.NewMemoryStore()
	hub := reload.NewHub(8)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub.Start(ctx)

	h := New(v, store, hub, callout.Default())
	r := chi.NewRouter()
	r.Get("/api/notes", h.ListNotes)
	r.Get("/api/kinds", h.ListKinds)
	r.Post("/api/render", h.RenderStatBlock)
	r.Post("/api/insert", h.Insert)
	r.Get("/notes/*", h.NotePage)

	srv := httptest.NewServer(Recovery(Logging(r)))
	t.Cleanup(srv.Close)
	return v, store, srv
}

func TestRenderStatBlock_OK(t *testing.T) {
	_, _, srv := testServer(t)

	resp, err := http.Post(srv.URL+"/api/render", "application/json", strings.NewReader(goblinJSON))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readAll(t, resp)
	assert.Contains(t, body, `<div class="dm-tools-statblock-title-header">Goblin</div>`)
	assert.Contains(t, body, "Small Humanoid, Neutral Evil")
}

func TestRenderStatBlock_ParseFailure(t *testing.T) {
	_, _, srv := testServer(t)

	resp, err := http.Post(srv.URL+"/api/render", "application/json", strings.NewReader(`{"name": 42}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var e map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "PARSE_ERROR", e["code"])
	assert.NotEmpty(t, e["error"])
}

func TestListKinds(t *testing.T) {
	_, _, srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/kinds")
	require.NoError(t, err)
	defer resp.Body.Close()

	var kinds []kindInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&kinds))
	require.Len(t, kinds, 12)
	assert.Equal(t, "readout", kinds[0].Kind)
	assert.Equal(t, "add-readout-block", kinds[0].CommandID)
	assert.Equal(t, "Add Readout Block", kinds[0].CommandName)
}

func TestInsert_Template(t *testing.T) {
	v, _, srv := testServer(t)
	require.NoError(t, v.Write("shop.md", []byte("# The Gilded Flagon\n")))

	req := `{"note": "shop.md", "kind": "business", "line": 1, "col": 0}`
	resp, err := http.Post(srv.URL+"/api/insert", "application/json", strings.NewReader(req))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := v.Read("shop.md")
	require.NoError(t, err)
	assert.Contains(t, string(got), ">[!business]\n>**Owner** : ")
}

func TestInsert_SampleStatBlock(t *testing.T) {
	v, _, srv := testServer(t)
	require.NoError(t, v.Write("bestiary.md", []byte("")))

	req := `{"note": "bestiary.md", "kind": "statblock", "line": 0, "col": 0}`
	resp, err := http.Post(srv.URL+"/api/insert", "application/json", strings.NewReader(req))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := v.Read("bestiary.md")
	require.NoError(t, err)

	fences := vault.Fences(string(got))
	require.Len(t, fences, 1)
	b, err := statblock.Parse([]byte(fences[0].Source))
	require.NoError(t, err)
	assert.Equal(t, "Example Creature", b.Name)
}

func TestInsert_UnknownKind(t *testing.T) {
	_, _, srv := testServer(t)

	req := `{"note": "x.md", "kind": "tavern", "line": 0, "col": 0}`
	resp, err := http.Post(srv.URL+"/api/insert", "application/json", strings.NewReader(req))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNotePage(t *testing.T) {
	v, _, srv := testServer(t)
	note := "# Goblin Camp\n```statblock\n" + goblinJSON + "\n```\n```statblock\nnot json\n```\n"
	require.NoError(t, v.Write("camp/goblins.md", []byte(note)))

	resp, err := http.Get(srv.URL + "/notes/camp/goblins.md")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readAll(t, resp)
	assert.Contains(t, body, `<div class="dm-tools-statblock-title-header">Goblin</div>`)
	// The bad fence renders an error block without aborting the page.
	assert.Contains(t, body, "dm-tools-statblock-error")
	assert.Contains(t, body, "Invalid stat block (line 18)")
}

func TestNotePage_Missing(t *testing.T) {
	_, _, srv := testServer(t)

	resp, err := http.Get(srv.URL + "/notes/ghost.md")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListNotes(t *testing.T) {
	_, store, srv := testServer(t)
	require.NoError(t, store.Upsert(context.Background(), index.NoteMeta{
		Path: "a.md", Title: "A", Modified: time.Now(), StatBlocks: 1,
	}))

	resp, err := http.Get(srv.URL + "/api/notes")
	require.NoError(t, err)
	defer resp.Body.Close()

	var notes []index.NoteMeta
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "a.md", notes[0].Path)
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
