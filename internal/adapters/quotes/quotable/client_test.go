package quotable

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lisvet-landing/internal/platform/httpclient"
)

func TestRandom_ParsesQuote(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"Sé el cambio.","author":"Gandhi"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, httpclient.New(time.Second))
	q, err := c.Random(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Texto != "Sé el cambio." || q.Autor != "Gandhi" {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestRandom_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, httpclient.New(time.Second))
	if _, err := c.Random(context.Background()); err == nil {
		t.Fatalf("expected error on 503")
	}
}
