package memory

import (
	"context"
	"errors"
	"testing"

	"lisvet-landing/internal/domain/appointments"
)

func cita(id int64) appointments.Appointment {
	return appointments.Appointment{
		ID:       id,
		Nombre:   "Ana",
		Email:    "a@x.com",
		Telefono: "0999",
		Mascota:  "Rex",
		Servicio: appointments.ServiceConsulta,
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	ctx := context.Background()
	repo := NewCitasRepo()

	for _, id := range []int64{3, 1, 2} {
		if err := repo.Add(ctx, cita(id)); err != nil {
			t.Fatalf("add %d failed: %v", id, err)
		}
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	got := []int64{items[0].ID, items[1].ID, items[2].ID}
	if got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("expected insertion order [3 1 2], got %v", got)
	}
}

func TestDuplicateAndIdempotentRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewCitasRepo()

	if err := repo.Add(ctx, cita(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := repo.Add(ctx, cita(1)); !errors.Is(err, appointments.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	if err := repo.Remove(ctx, 1); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := repo.Remove(ctx, 1); err != nil {
		t.Fatalf("second remove should be no-op, got %v", err)
	}
}
