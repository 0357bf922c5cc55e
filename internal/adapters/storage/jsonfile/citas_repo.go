// Package jsonfile es el almacenamiento principal de citas: un único
// archivo JSON con el array completo, reescrito entero en cada mutación.
// A la escala esperada (decenas a pocos cientos de citas) no amerita
// nada más fino.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"lisvet-landing/internal/domain/appointments"
	"lisvet-landing/internal/platform/logger"
)

const filePerm = 0o644

type citasRepo struct {
	mu    sync.RWMutex
	path  string
	items []appointments.Appointment
	log   logger.Logger
}

// NewCitasRepo carga el archivo si existe. Un archivo ilegible o con JSON
// inválido no es fatal: se descarta, se loguea y se arranca con la
// colección vacía.
func NewCitasRepo(path string, log logger.Logger) appointments.Repository {
	r := &citasRepo{
		path:  path,
		items: make([]appointments.Appointment, 0),
		log:   log,
	}
	r.load()
	return r
}

func (r *citasRepo) load() {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn("citas file unreadable, starting empty", map[string]any{
				"path":  r.path,
				"error": err.Error(),
			})
		}
		return
	}

	var items []appointments.Appointment
	if err := json.Unmarshal(raw, &items); err != nil {
		r.log.Warn("citas file corrupt, resetting to empty", map[string]any{
			"path":  r.path,
			"error": err.Error(),
		})
		return
	}
	r.items = items
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
	return r.persistLocked()
}

func (r *citasRepo) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return r.persistLocked()
		}
	}
	return nil
}

// persistLocked reescribe el archivo completo (tmp + rename para no dejar
// un archivo a medias). Si falla, la mutación ya quedó en memoria y se
// devuelve ErrPersist para que el caller lo muestre como advertencia.
func (r *citasRepo) persistLocked() error {
	data, err := json.MarshalIndent(r.items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", appointments.ErrPersist, err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, filePerm); err != nil {
		return fmt.Errorf("%w: %v", appointments.ErrPersist, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", appointments.ErrPersist, err)
	}
	return nil
}
