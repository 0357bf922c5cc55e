package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lisvet-landing/internal/platform/logger"
	"lisvet-landing/internal/ports/scheduling"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicateID  = errors.New("duplicate id")

	// ErrPersist marca una mutación que quedó en memoria pero no llegó
	// al almacenamiento duradero. Para la sesión actual la memoria sigue
	// siendo la autoridad; el caller lo muestra como advertencia.
	ErrPersist = errors.New("durable write failed")

	// ErrRemote marca un fallo del sistema de agendamiento remoto.
	// El store no se toca cuando ocurre.
	ErrRemote = errors.New("remote booking failed")
)

// Service es el dueño de la colección de citas: carga inicial, altas por
// el flujo de agendamiento, bajas y el espejo duradero van todos por acá.
type Service struct {
	repo Repository
	sink scheduling.Sink
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, sink scheduling.Sink, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		sink: sink,
		log:  log,
		now:  time.Now,
	}
}

// List devuelve la colección en orden de inserción.
func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

// Add registra una cita ya construida. El id debe venir asignado y único;
// el store no genera ids.
func (s *Service) Add(ctx context.Context, a Appointment) error {
	if a.ID == 0 || !a.Valid() {
		return ErrInvalidInput
	}
	return s.repo.Add(ctx, a)
}

// Remove elimina por id con igualdad estricta. Repetir el mismo id es
// seguro: la segunda llamada no hace nada.
func (s *Service) Remove(ctx context.Context, id int64) error {
	return s.repo.Remove(ctx, id)
}

type SubmitInput struct {
	Nombre   string
	Email    string
	Telefono string
	Mascota  string
	Servicio string
	Mensaje  string
}

// Submit corre el flujo completo del formulario: validar, crear la reserva
// remota y, sólo si el remoto aceptó, construir la cita y agregarla.
//
// Si retorna ErrPersist la cita SÍ quedó agregada (en memoria) y el caller
// debe tratarlo como advertencia, no como fallo del agendamiento.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Appointment, error) {
	// Los campos de texto libre se recortan; el selector de servicio no.
	nombre := strings.TrimSpace(in.Nombre)
	email := strings.TrimSpace(in.Email)
	telefono := strings.TrimSpace(in.Telefono)
	mascota := strings.TrimSpace(in.Mascota)
	mensaje := strings.TrimSpace(in.Mensaje)
	servicio := in.Servicio

	if nombre == "" || email == "" || telefono == "" || mascota == "" || servicio == "" {
		return Appointment{}, ErrInvalidInput
	}

	resp, err := s.sink.CreateBooking(ctx, scheduling.BookingRequest{
		Title:  fmt.Sprintf("Cita para %s", nombre),
		Body:   fmt.Sprintf("Servicio: %s, Mascota: %s", servicio, mascota),
		UserID: 1,
	})
	if err != nil {
		s.log.Error("remote booking failed", map[string]any{"error": err.Error()})
		return Appointment{}, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	id := resp.ID
	if id == 0 {
		// El remoto no devolvió id; el reloj en milisegundos sirve
		// de id único a esta escala.
		id = s.now().UnixMilli()
	}

	a := Appointment{
		ID:       id,
		Nombre:   nombre,
		Email:    email,
		Telefono: telefono,
		Mascota:  mascota,
		Servicio: ServiceCode(servicio),
		Mensaje:  mensaje,
		Fecha:    FormatFecha(s.now()),
	}

	err = s.repo.Add(ctx, a)
	if errors.Is(err, ErrDuplicateID) {
		// El endpoint mock devuelve el mismo id en cada POST; si el id
		// remoto ya está en la colección se recurre al mismo fallback
		// de reloj para no perder la cita.
		a.ID = s.now().UnixMilli()
		err = s.repo.Add(ctx, a)
	}
	if err != nil {
		if errors.Is(err, ErrPersist) {
			s.log.Warn("appointment kept in memory only", map[string]any{
				"id":    a.ID,
				"error": err.Error(),
			})
			return a, err
		}
		return Appointment{}, err
	}

	s.log.Info("appointment created", map[string]any{
		"id":       a.ID,
		"servicio": string(a.Servicio),
	})
	return a, nil
}
