package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/tienda/internal/api/middleware"
)

// CreateTestRequest builds a request carrying a discard logger, the given
// path values and, when session is not empty, the cart session header.
func CreateTestRequest(method, target string, body io.Reader, session string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(middleware.WithLogger(req.Context(), logger))
}
