package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/aaravmahajanofficial/tienda/internal/models"
)

// Upstream is an in-memory articulos API served over httptest. SetFail
// makes every request answer with that status.
type Upstream struct {
	Server *httptest.Server

	mu     sync.Mutex
	items  []models.Articulo
	nextID int64
	fail   int
	calls  []string
}

func NewUpstream(t *testing.T, items ...models.Articulo) *Upstream {
	t.Helper()

	u := &Upstream{items: items, nextID: int64(len(items)) + 1}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Server.Close)

	return u
}

// URL is the collection endpoint.
func (u *Upstream) URL() string {
	return u.Server.URL + "/api/articulos"
}

func (u *Upstream) SetFail(status int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.fail = status
}

func (u *Upstream) Items() []models.Articulo {
	u.mu.Lock()
	defer u.mu.Unlock()

	return append([]models.Articulo(nil), u.items...)
}

func (u *Upstream) CallLog() []string {
	u.mu.Lock()
	defer u.mu.Unlock()

	return append([]string(nil), u.calls...)
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.calls = append(u.calls, r.Method+" "+r.URL.Path)

	if u.fail != 0 {
		http.Error(w, http.StatusText(u.fail), u.fail)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/articulos")
	rest = strings.TrimPrefix(rest, "/")

	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, u.items)
		case http.MethodPost:
			var item models.Articulo
			if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			item.ID = u.nextID
			u.nextID++
			u.items = append(u.items, item)
			writeJSON(w, http.StatusCreated, item)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	i := -1
	for idx, item := range u.items {
		if item.ID == id {
			i = idx
		}
	}

	if i < 0 {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, u.items[i])
	case http.MethodPut:
		var item models.Articulo
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		item.ID = id
		u.items[i] = item
		writeJSON(w, http.StatusOK, item)
	case http.MethodDelete:
		u.items = append(u.items[:i], u.items[i+1:]...)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
