// Package quotable implementa el provider de frases contra el endpoint
// de frase aleatoria filtrado al tag inspiracional.
package quotable

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lisvet-landing/internal/platform/httpclient"
	"lisvet-landing/internal/ports/quotes"
)

var ErrNotConfigured = errors.New("quote provider not configured")

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

type quoteResponse struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

func (c *Client) Random(ctx context.Context) (quotes.Quote, error) {
	if c == nil || c.url == "" {
		return quotes.Quote{}, ErrNotConfigured
	}

	var out quoteResponse
	if err := c.http.GetJSON(ctx, c.url, &out); err != nil {
		return quotes.Quote{}, fmt.Errorf("quotable: %w", err)
	}

	return quotes.Quote{
		Texto: out.Content,
		Autor: out.Author,
	}, nil
}
