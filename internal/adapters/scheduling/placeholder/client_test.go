package placeholder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lisvet-landing/internal/platform/httpclient"
	"lisvet-landing/internal/ports/scheduling"
)

func req() scheduling.BookingRequest {
	return scheduling.BookingRequest{
		Title:  "Cita para Ana",
		Body:   "Servicio: vacunacion, Mascota: Rex",
		UserID: 1,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":101}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, httpclient.New(time.Second))
	resp, err := c.CreateBooking(context.Background(), req())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != 101 {
		t.Fatalf("expected id 101, got %d", resp.ID)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestCreateBooking_RetriesOnceOn5xx(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, httpclient.New(time.Second))
	resp, err := c.CreateBooking(context.Background(), req())
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if resp.ID != 7 || calls != 2 {
		t.Fatalf("expected id 7 after 2 calls, got id=%d calls=%d", resp.ID, calls)
	}
}

func TestCreateBooking_NoRetryOn4xx(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, httpclient.New(time.Second))
	if _, err := c.CreateBooking(context.Background(), req()); err == nil {
		t.Fatalf("expected error on 422")
	}
	if calls != 1 {
		t.Fatalf("4xx must not be retried, got %d calls", calls)
	}
}

func TestCreateBooking_EmptyResponseBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, httpclient.New(time.Second))
	resp, err := c.CreateBooking(context.Background(), req())
	if err != nil {
		t.Fatalf("2xx without body should succeed, got %v", err)
	}
	if resp.ID != 0 {
		t.Fatalf("expected id 0 (caller applies fallback), got %d", resp.ID)
	}
}
