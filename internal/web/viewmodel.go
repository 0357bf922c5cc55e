package web

import (
	"lisvet-landing/internal/domain/appointments"
	"lisvet-landing/internal/domain/widgets"
)

// CitaCard es el view-model de una tarjeta de cita. Todo llega como texto
// plano; el escape lo hace html/template al renderizar, centralizado.
type CitaCard struct {
	ID       int64
	Nombre   string
	Fecha    string
	Mascota  string
	Servicio string // nombre visible, ya mapeado
	Telefono string
	Email    string
	Mensaje  string // vacío => el bloque de mensaje no se muestra
}

type ServicioOption struct {
	Code   string
	Nombre string
}

type Flash struct {
	Tipo    string // "success" | "error" | "warning"
	Mensaje string
}

type LandingData struct {
	Clima widgets.WeatherView
	Frase widgets.QuoteView

	// Citas en orden de inserción. Vacío => se muestra el estado vacío
	// y se suprime la lista.
	Citas []CitaCard

	Servicios []ServicioOption
	Flash     *Flash
}

// BuildCards proyecta la colección a tarjetas, en el mismo orden.
func BuildCards(items []appointments.Appointment) []CitaCard {
	out := make([]CitaCard, 0, len(items))
	for _, a := range items {
		out = append(out, CitaCard{
			ID:       a.ID,
			Nombre:   a.Nombre,
			Fecha:    a.Fecha,
			Mascota:  a.Mascota,
			Servicio: appointments.ServiceName(a.Servicio),
			Telefono: a.Telefono,
			Email:    a.Email,
			Mensaje:  a.Mensaje,
		})
	}
	return out
}

func servicioOptions() []ServicioOption {
	out := make([]ServicioOption, 0, len(appointments.ServiceCodes))
	for _, c := range appointments.ServiceCodes {
		out = append(out, ServicioOption{
			Code:   string(c),
			Nombre: appointments.ServiceName(c),
		})
	}
	return out
}
