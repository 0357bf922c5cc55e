package appointments

import (
	"fmt"
	"strings"
	"time"
)

// ServiceCode define los servicios que ofrece la clínica.
// @Enum consulta, vacunacion, cirugia, emergencia, control, estetica
type ServiceCode string

const (
	ServiceConsulta   ServiceCode = "consulta"
	ServiceVacunacion ServiceCode = "vacunacion"
	ServiceCirugia    ServiceCode = "cirugia"
	ServiceEmergencia ServiceCode = "emergencia"
	ServiceControl    ServiceCode = "control"
	ServiceEstetica   ServiceCode = "estetica"
)

// ServiceCodes en el orden en que los muestra el selector del formulario.
var ServiceCodes = []ServiceCode{
	ServiceConsulta,
	ServiceVacunacion,
	ServiceCirugia,
	ServiceEmergencia,
	ServiceControl,
	ServiceEstetica,
}

var serviceNames = map[ServiceCode]string{
	ServiceConsulta:   "Consulta General",
	ServiceVacunacion: "Vacunación",
	ServiceCirugia:    "Cirugía",
	ServiceEmergencia: "Emergencia",
	ServiceControl:    "Control de Salud",
	ServiceEstetica:   "Estética y Baño",
}

// ServiceName traduce el código al nombre visible. Un código fuera del
// catálogo se muestra tal cual llegó (nunca falla ni oculta la cita).
func ServiceName(code ServiceCode) string {
	if name, ok := serviceNames[code]; ok {
		return name
	}
	return string(code)
}

// Appointment es el único registro persistido del sistema. Las keys JSON
// en español son el formato de archivo y de API.
type Appointment struct {
	ID       int64       `json:"id"`
	Nombre   string      `json:"nombre"`
	Email    string      `json:"email"`
	Telefono string      `json:"telefono"`
	Mascota  string      `json:"mascota"`
	Servicio ServiceCode `json:"servicio"`
	Mensaje  string      `json:"mensaje,omitempty"`

	// Fecha de creación ya localizada ("30 de agosto de 2026").
	// Se deriva al crear y no se edita.
	Fecha string `json:"fecha"`
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatFecha produce la fecha larga en español (es-EC),
// p.ej. "30 de agosto de 2026".
func FormatFecha(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// Valid reporta si el registro tiene todos los campos obligatorios.
// Mensaje es el único opcional; el email no se valida en formato,
// sólo en presencia.
func (a Appointment) Valid() bool {
	required := []string{a.Nombre, a.Email, a.Telefono, a.Mascota, string(a.Servicio)}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}
