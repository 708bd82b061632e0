package articulos_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/tienda/internal/models"
	"github.com/aaravmahajanofficial/tienda/pkg/articulos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/articulos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"nombre":"Laptop","precio":999.5},{"id":2,"nombre":"Mouse","precio":20}]`))
	}))
	defer server.Close()

	client := articulos.NewClient(server.URL+"/api/articulos/", time.Second)

	items, err := client.List(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []models.Articulo{
		{ID: 1, Nombre: "Laptop", Precio: 999.5},
		{ID: 2, Nombre: "Mouse", Precio: 20},
	}, items)
}

func TestListNullBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer server.Close()

	items, err := articulos.NewClient(server.URL, time.Second).List(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/articulos/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"nombre":"Teclado","precio":45}`))
	}))
	defer server.Close()

	item, err := articulos.NewClient(server.URL+"/api/articulos", time.Second).Get(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, &models.Articulo{ID: 7, Nombre: "Teclado", Precio: 45}, item)
}

func TestCreateAndUpdateSendPayload(t *testing.T) {
	type call struct {
		method  string
		path    string
		payload articulos.Payload
	}

	var calls []call

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var p articulos.Payload
		require.NoError(t, json.Unmarshal(body, &p))
		calls = append(calls, call{method: r.Method, path: r.URL.Path, payload: p})

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := articulos.NewClient(server.URL+"/api/articulos", time.Second)
	payload := articulos.Payload{Nombre: "Monitor", Precio: 150}

	require.NoError(t, client.Create(t.Context(), payload))
	require.NoError(t, client.Update(t.Context(), 3, payload))

	assert.Equal(t, []call{
		{method: http.MethodPost, path: "/api/articulos", payload: payload},
		{method: http.MethodPut, path: "/api/articulos/3", payload: payload},
	}, calls)
}

func TestDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/articulos/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	assert.NoError(t, articulos.NewClient(server.URL+"/api/articulos", time.Second).Delete(t.Context(), 9))
}

func TestStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	err := articulos.NewClient(server.URL, time.Second).Delete(t.Context(), 1)
	require.Error(t, err)

	statusErr, ok := articulos.AsStatus(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "500 Internal Server Error", statusErr.Status)
	assert.Contains(t, statusErr.Body, "boom")
	assert.False(t, articulos.IsConnection(err))
}

func TestConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := articulos.NewClient(url, time.Second).List(t.Context())
	require.Error(t, err)
	assert.True(t, articulos.IsConnection(err))

	_, ok := articulos.AsStatus(err)
	assert.False(t, ok)
}

func TestMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	_, err := articulos.NewClient(server.URL, time.Second).List(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode list response")
	assert.False(t, articulos.IsConnection(err))
}
