package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/meur/gemwiki/internal/models"
	"github.com/meur/gemwiki/internal/site"
)

type staticCatalog struct {
	cat *models.Catalog
	err error
}

func (s staticCatalog) Load() (*models.Catalog, error) {
	return s.cat, s.err
}

type fixedStats site.StatsState

func (f fixedStats) ReadStatsState(string) (site.StatsState, error) {
	return site.StatsState(f), nil
}

func catalog() *models.Catalog {
	cat := models.NewCatalog()
	retiff := models.NewCharacter("SPR_Icon_PC_Retiff_01.png", "Retiff", false)
	retiff.Group = models.GroupStockCharacters
	cat.Put("spr-icon-pc-retiff-01", retiff)

	viki := models.NewCharacter("SPR_Icon_PC_Viki_01.png", "Viki", false)
	viki.Group = models.GroupKatovic
	viki.Hidden = true
	cat.Put("spr-icon-pc-viki-01", viki)
	return cat
}

func newServer(t *testing.T, root http.FileSystem) *Server {
	return New(staticCatalog{cat: catalog()}, fixedStats(site.StatsFilled), root, zaptest.NewLogger(t))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListCharacters(t *testing.T) {
	w := get(t, newServer(t, nil), "/api/characters")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Characters []struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Group  string `json:"group"`
			Hidden bool   `json:"hidden"`
			Page   string `json:"page"`
			Stats  string `json:"stats"`
		} `json:"characters"`
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 2, body.TotalCount)
	assert.Equal(t, "spr-icon-pc-retiff-01", body.Characters[0].ID)
	assert.Equal(t, "Stock Characters", body.Characters[0].Group)
	assert.Equal(t, "characters/retiff.html", body.Characters[0].Page)
	assert.Equal(t, "filled", body.Characters[0].Stats)
	assert.True(t, body.Characters[1].Hidden)
}

func TestListCharactersByGroup(t *testing.T) {
	s := newServer(t, nil)

	w := get(t, s, "/api/characters?group=katovic")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_count":1`)
	assert.Contains(t, w.Body.String(), "Viki")

	w = get(t, s, "/api/characters?group=Atlantis")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCharacter(t *testing.T) {
	s := newServer(t, nil)

	w := get(t, s, "/api/characters/spr-icon-pc-retiff-01")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Retiff"`)

	w = get(t, s, "/api/characters/spr-icon-pc-nobody-01")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Character not found")
}

func TestListGroups(t *testing.T) {
	w := get(t, newServer(t, nil), "/api/groups")
	require.Equal(t, http.StatusOK, w.Code)

	var groups []groupView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
	require.Len(t, groups, len(models.Groups()))
	assert.Equal(t, groupView{Name: "Stock Characters", Total: 1, Visible: 1}, groups[0])
	assert.Equal(t, groupView{Name: "Katovic", Total: 1, Visible: 0}, groups[models.GroupKatovic])
}

func TestCatalogFailure(t *testing.T) {
	s := New(staticCatalog{err: errors.New("disk gone")}, nil, nil, nil)
	w := get(t, s, "/api/characters")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStaticSiteAndHealth(t *testing.T) {
	root := t.TempDir()
	b, err := site.NewBuilder(root, site.DefaultOptions(), nil)
	require.NoError(t, err)
	_, err = b.Build(catalog())
	require.NoError(t, err)

	srv := httptest.NewServer(newServer(t, http.Dir(root)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "OK", string(body))

	resp, err = http.Get(srv.URL + "/characters/retiff.html")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), site.StatsBegin)

	resp, err = http.Get(srv.URL + "/")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "CHARACTER WIKI")
}

func TestFileServerUnderPrefix(t *testing.T) {
	files := fstest.MapFS{"wiki.html": {Data: []byte("<h1>wiki</h1>")}}
	r := chi.NewRouter()
	FileServer(r, "/site", http.FS(files))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/site", nil))
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/site/", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/site/wiki.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>wiki</h1>", w.Body.String())

	assert.Panics(t, func() { FileServer(chi.NewRouter(), "/{id}", http.FS(files)) })
}
