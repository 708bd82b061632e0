package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCounters(t *testing.T) {
	before := testutil.ToFloat64(cartMutationsTotal.WithLabelValues("added"))
	RecordCartMutation("added")
	assert.Equal(t, before+1, testutil.ToFloat64(cartMutationsTotal.WithLabelValues("added")))

	before = testutil.ToFloat64(upstreamRequestsTotal.WithLabelValues("list", OutcomeConnection))
	RecordUpstreamRequest("list", OutcomeConnection)
	assert.Equal(t, before+1, testutil.ToFloat64(upstreamRequestsTotal.WithLabelValues("list", OutcomeConnection)))

	before = testutil.ToFloat64(ordersTotal.WithLabelValues("simulated"))
	RecordOrder("simulated")
	assert.Equal(t, before+1, testutil.ToFloat64(ordersTotal.WithLabelValues("simulated")))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/admin/articulos/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	handler := Middleware(mux)

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "GET /api/v1/admin/articulos/{id}"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/articulos/7", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "GET /api/v1/admin/articulos/{id}")))
}

func TestHandlerExposesDomainCounters(t *testing.T) {
	RecordCartMutation("cleared")

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "tienda_cart_mutations_total"))
}
