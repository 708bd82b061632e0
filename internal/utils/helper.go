package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/tienda/internal/api/middleware"
)

const maxBodyBytes = 1 << 20

var (
	ErrEmptyBody    = errors.New("request body cannot be empty")
	ErrBodyTooLarge = fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
)

// DecodeJSONBody reads exactly one JSON document from the body.
func DecodeJSONBody(r *http.Request, dest any) error {

	defer r.Body.Close()

	logger := middleware.LoggerFromContext(r.Context())

	limited := &io.LimitedReader{R: r.Body, N: maxBodyBytes + 1}
	dec := json.NewDecoder(limited)

	err := dec.Decode(dest)
	switch {
	case limited.N <= 0:
		logger.Warn("Request body too large")
		return ErrBodyTooLarge
	case errors.Is(err, io.EOF):
		logger.Warn("Empty request body")
		return ErrEmptyBody
	case err != nil:
		logger.Warn("Failed to parse request JSON", slog.String("error", err.Error()))
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	if dec.More() {
		logger.Warn("Trailing data after request JSON")
		return errors.New("invalid JSON format: unexpected data after the document")
	}

	return nil
}
