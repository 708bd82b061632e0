// Package articulos is a client for the upstream articulos REST API, the
// source of truth for the catalog.
package articulos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/tienda/internal/metrics"
	"github.com/aaravmahajanofficial/tienda/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrConnection wraps every failure that happened before a response arrived.
var ErrConnection = errors.New("articulos: connection failed")

// StatusError is a non-2xx answer.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return "articulos: unexpected status " + e.Status
}

// Payload is the body accepted by create and update.
type Payload struct {
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
}

type Client interface {
	List(ctx context.Context) ([]models.Articulo, error)
	Get(ctx context.Context, id int64) (*models.Articulo, error)
	Create(ctx context.Context, p Payload) error
	Update(ctx context.Context, id int64, p Payload) error
	Delete(ctx context.Context, id int64) error
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

type Option func(*httpClient)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *httpClient) {
		h.http = c
	}
}

// NewClient talks to baseURL, the collection endpoint (for example
// http://localhost:8080/api/articulos).
func NewClient(baseURL string, timeout time.Duration, opts ...Option) Client {

	c := &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *httpClient) itemURL(id int64) string {
	return c.baseURL + "/" + strconv.FormatInt(id, 10)
}

func (c *httpClient) List(ctx context.Context) ([]models.Articulo, error) {

	var items []models.Articulo

	if err := c.do(ctx, "list", http.MethodGet, c.baseURL, nil, &items); err != nil {
		return nil, err
	}

	if items == nil {
		items = []models.Articulo{}
	}

	return items, nil
}

func (c *httpClient) Get(ctx context.Context, id int64) (*models.Articulo, error) {

	var item models.Articulo

	if err := c.do(ctx, "get", http.MethodGet, c.itemURL(id), nil, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *httpClient) Create(ctx context.Context, p Payload) error {
	return c.do(ctx, "create", http.MethodPost, c.baseURL, p, nil)
}

func (c *httpClient) Update(ctx context.Context, id int64, p Payload) error {
	return c.do(ctx, "update", http.MethodPut, c.itemURL(id), p, nil)
}

func (c *httpClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *httpClient) do(ctx context.Context, op, method, url string, body, dest any) error {

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(op, metrics.OutcomeConnection)
		return fmt.Errorf("%w: %s %s: %w", ErrConnection, method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordUpstreamRequest(op, metrics.OutcomeHTTPError)

		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     statusLine(resp),
			Body:       string(raw),
		}
	}

	metrics.RecordUpstreamRequest(op, metrics.OutcomeOK)

	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", op, err)
	}

	return nil
}

// statusLine is "<code> <text>", for example "500 Internal Server Error".
func statusLine(resp *http.Response) string {

	if resp.Status != "" {
		return resp.Status
	}

	return strings.TrimSpace(fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
}

// IsConnection reports whether err came from a transport failure.
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}

// AsStatus unwraps a StatusError.
func AsStatus(err error) (*StatusError, bool) {

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}

	return nil, false
}
