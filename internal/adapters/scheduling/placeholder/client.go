// Package placeholder implementa el sink de agendamiento contra el
// endpoint mock de creación de recursos (jsonplaceholder).
package placeholder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lisvet-landing/internal/platform/httpclient"
	"lisvet-landing/internal/ports/scheduling"
)

var ErrNotConfigured = errors.New("booking sink not configured")

type Client struct {
	url  string
	http *httpclient.Client
}

func NewClient(url string, hc *httpclient.Client) *Client {
	return &Client{
		url:  strings.TrimSpace(url),
		http: hc,
	}
}

// CreateBooking hace el POST {title, body, userId}. Cualquier 2xx cuenta
// como éxito; si la respuesta trae id se usa, si no queda en 0 y el
// caller aplica su fallback. Un fallo transitorio se reintenta una sola
// vez; los errores 4xx no se reintentan.
func (c *Client) CreateBooking(ctx context.Context, req scheduling.BookingRequest) (scheduling.BookingResponse, error) {
	if c == nil || c.url == "" {
		return scheduling.BookingResponse{}, ErrNotConfigured
	}

	var out scheduling.BookingResponse
	err := c.http.PostJSON(ctx, c.url, req, &out)
	if err == nil {
		return out, nil
	}
	if !retryable(err) {
		return scheduling.BookingResponse{}, fmt.Errorf("booking post: %w", err)
	}

	if ctx.Err() != nil {
		return scheduling.BookingResponse{}, ctx.Err()
	}

	out = scheduling.BookingResponse{}
	if err := c.http.PostJSON(ctx, c.url, req, &out); err != nil {
		return scheduling.BookingResponse{}, fmt.Errorf("booking post (retry): %w", err)
	}
	return out, nil
}

// retryable: errores de red y 5xx sí; 4xx no (el request no va a mejorar).
func retryable(err error) bool {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return true
}
