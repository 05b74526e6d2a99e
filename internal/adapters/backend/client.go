package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-shelter-hub/internal/platform/httpclient"
	"pet-shelter-hub/internal/platform/respond"
	"pet-shelter-hub/internal/ports/auth"
)

// Config del backend REST de refugios.
type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío se usa "X-Api-Key".
	APIKeyHeader string

	Timeout   time.Duration
	Transport http.RoundTripper
}

// Client habla con el backend en nombre del usuario del request:
// el token de auth.ClaimsFrom(ctx) se reenvía como Bearer.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("backend: base url required")
	}

	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = "X-Api-Key"
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		Headers:   map[string]string{header: strings.TrimSpace(cfg.APIKey)},
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("backend: %w", err)
	}
	return &Client{http: hc}, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var headers map[string]string
	if claims, ok := auth.ClaimsFrom(ctx); ok && claims.Token != "" {
		headers = map[string]string{"Authorization": "Bearer " + claims.Token}
	}
	return mapError(c.http.DoJSON(ctx, method, path, headers, in, out))
}

// mapError traduce los status del backend a los errores de dominio.
// El resto de no-2xx queda como *httpclient.HTTPError (502 hacia el cliente).
func mapError(err error) error {
	switch httpclient.StatusCode(err) {
	case 0:
		return err
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", respond.ErrNotFound, err)
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		return fmt.Errorf("%w: %w", respond.ErrInvalidInput, err)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", auth.ErrUnauthorized, err)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", auth.ErrForbidden, err)
	default:
		return err
	}
}

func pathf(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}
