package appointments

import "context"

// Repository guarda la colección completa de citas. El patrón de acceso es
// "listar todo" y "borrar por id", así que no hay queries más finas.
// Las implementaciones deben conservar el orden de inserción.
type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	Add(ctx context.Context, a Appointment) error

	// Remove borra la cita cuyo id coincide exactamente. Si el id no
	// existe no es un error: no hace nada.
	Remove(ctx context.Context, id int64) error
}
