package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lisvet-landing/internal/platform/httpclient"
)

func TestCurrent_ParsesForecast(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":24.5,"weather_code":61}}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, httpclient.New(time.Second))
	obs, err := c.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs.TemperatureC != 24.5 || obs.Code != 61 {
		t.Fatalf("unexpected observation: %+v", obs)
	}
}

func TestCurrent_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, httpclient.New(time.Second))
	if _, err := c.Current(context.Background()); err == nil {
		t.Fatalf("expected error on 500")
	}
}

func TestCurrent_NotConfigured(t *testing.T) {
	c := NewClient("", httpclient.New(time.Second))
	if _, err := c.Current(context.Background()); err == nil {
		t.Fatalf("expected error for empty url")
	}
}
