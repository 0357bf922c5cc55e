package scheduling

import "context"

// BookingRequest es el resumen que se envía al sistema de agendamiento.
// El contrato (title/body/userId) viene del endpoint mock que usa la página.
type BookingRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// BookingResponse trae el id asignado por el remoto. Puede venir vacío
// (id=0); en ese caso el caller decide el fallback.
type BookingResponse struct {
	ID int64 `json:"id"`
}

// Sink crea la reserva en el sistema remoto.
type Sink interface {
	CreateBooking(ctx context.Context, req BookingRequest) (BookingResponse, error)
}
