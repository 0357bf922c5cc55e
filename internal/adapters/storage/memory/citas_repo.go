package memory

import (
	"context"
	"sync"

	"lisvet-landing/internal/domain/appointments"
)

// citasRepo guarda las citas en un slice para conservar el orden de
// inserción (el mapa del MVP anterior lo perdía).
type citasRepo struct {
	mu    sync.RWMutex
	items []appointments.Appointment
}

func NewCitasRepo() appointments.Repository {
	return &citasRepo{
		items: make([]appointments.Appointment, 0),
	}
}

func (r *citasRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *citasRepo) Add(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.ID == a.ID {
			return appointments.ErrDuplicateID
		}
	}
	r.items = append(r.items, a)
	return nil
}

func (r *citasRepo) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	// id inexistente: no-op, no error.
	return nil
}
