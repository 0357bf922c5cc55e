package web

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"lisvet-landing/internal/domain/appointments"
	"lisvet-landing/internal/platform/logger"
	"lisvet-landing/internal/ports/scheduling"
)

// warnRepo borra en memoria pero siempre falla la escritura duradera.
type warnRepo struct {
	items []appointments.Appointment
}

func (r *warnRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	out := make([]appointments.Appointment, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *warnRepo) Add(ctx context.Context, a appointments.Appointment) error {
	r.items = append(r.items, a)
	return nil
}

func (r *warnRepo) Remove(ctx context.Context, id int64) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return fmt.Errorf("%w: disco lleno", appointments.ErrPersist)
		}
	}
	return nil
}

type noopSink struct{}

func (noopSink) CreateBooking(ctx context.Context, req scheduling.BookingRequest) (scheduling.BookingResponse, error) {
	return scheduling.BookingResponse{}, nil
}

func TestEliminar_PersistFailure_RedirectsWithWarning(t *testing.T) {
	repo := &warnRepo{items: []appointments.Appointment{
		{ID: 5, Nombre: "Ana", Email: "a@x.com", Telefono: "0999", Mascota: "Rex", Servicio: appointments.ServiceConsulta},
	}}
	svc := appointments.NewService(repo, noopSink{}, logger.New(logger.Options{Level: logger.Error}))

	// La ruta bajo prueba no toca los widgets.
	h := NewHandler(svc, nil, logger.New(logger.Options{Level: logger.Error}))
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/citas/5/eliminar", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/?estado=eliminada#citas" {
		t.Fatalf("expected warning redirect, got %q", loc)
	}
	if len(repo.items) != 0 {
		t.Fatalf("in-memory deletion should still happen, got %d items", len(repo.items))
	}
}

func TestFlashFromQuery_Eliminada(t *testing.T) {
	f := flashFromQuery("eliminada")
	if f == nil || f.Tipo != "warning" {
		t.Fatalf("expected warning flash, got %+v", f)
	}
	if !strings.Contains(f.Mensaje, "eliminada") {
		t.Fatalf("unexpected mensaje: %q", f.Mensaje)
	}
}
