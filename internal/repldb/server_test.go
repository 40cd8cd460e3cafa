package repldb

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goval-community/homeval/internal/store"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	db, err := store.OpenSQLite(filepath.Join(t.TempDir(), "repldb.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewServer("127.0.0.1:0", db).Handler()
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSetGetDelete(t *testing.T) {
	h := newTestServer(t)

	assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/", "name=homeval&lang=go").Code)

	rec := do(h, http.MethodGet, "/name", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "homeval", rec.Body.String())

	assert.Equal(t, http.StatusOK, do(h, http.MethodDelete, "/name", "").Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/name", "").Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodDelete, "/name", "").Code)
}

func TestList(t *testing.T) {
	h := newTestServer(t)
	require.Equal(t, http.StatusOK, do(h, http.MethodPost, "/", "a1=x&a2=y&b=z").Code)

	rec := do(h, http.MethodGet, "/?prefix=a", "")
	assert.Equal(t, "a1\na2", rec.Body.String())

	rec = do(h, http.MethodGet, "/?prefix=", "")
	assert.Equal(t, "a1\na2\nb", rec.Body.String())

	rec = do(h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSetOverwrites(t *testing.T) {
	h := newTestServer(t)
	do(h, http.MethodPost, "/", "k=1")
	do(h, http.MethodPost, "/", "k=2")
	assert.Equal(t, "2", do(h, http.MethodGet, "/k", "").Body.String())
}
