package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/coreapp/item-service/internal/item/repository"
	"github.com/coreapp/item-service/internal/item/service"
)

func newTestRouter() *gin.Engine {
	g := gin.New()
	RegisterItemRoutes(g, service.NewService(repository.NewMemoryRepo()))
	return g
}

func TestItemHandler_CreateThenGetByName(t *testing.T) {
	g := newTestRouter()

	// create
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"Apple"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	var cr map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cr))
	require.Equal(t, "Apple", cr["name"])

	// get by the exact name
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/items/Apple", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "Apple", got["name"])
	require.Equal(t, cr["id"], got["id"])

	// list
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/items", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestItemHandler_Errors(t *testing.T) {
	g := newTestRouter()

	// empty name -> 400
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// malformed body -> 400
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate -> 409
	for _, want := range []int{http.StatusCreated, http.StatusConflict} {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"Pear"}`))
		req.Header.Set("Content-Type", "application/json")
		g.ServeHTTP(w, req)
		require.Equal(t, want, w.Code)
	}

	// missing -> 404
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/items/Nothing", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}
