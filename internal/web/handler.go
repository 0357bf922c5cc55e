// Package web server-renderiza la landing de la clínica: navegación,
// widgets, formulario de agendamiento y la lista de citas. html/template
// escapa todo el texto libre en un solo lugar.
package web

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lisvet-landing/internal/domain/appointments"
	"lisvet-landing/internal/domain/widgets"
	"lisvet-landing/internal/platform/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	landingTpl   = template.Must(template.ParseFS(templateFS, "templates/landing.html"))
	confirmarTpl = template.Must(template.ParseFS(templateFS, "templates/confirmar.html"))
)

// Mensajes de estado para los banners de la página.
const (
	msgExito       = "¡Cita agendada exitosamente! Nos pondremos en contacto contigo pronto."
	msgInvalido    = "Por favor completa todos los campos requeridos."
	msgError       = "Hubo un error al agendar tu cita. Por favor intenta nuevamente."
	msgAdvertencia = "Tu cita fue agendada, pero no pudimos guardarla de forma permanente."
	msgEliminada   = "La cita fue eliminada, pero no pudimos actualizar el almacenamiento permanente."
)

type Handler struct {
	citas   *appointments.Service
	widgets *widgets.Service
	log     logger.Logger
}

func NewHandler(citas *appointments.Service, w *widgets.Service, log logger.Logger) *Handler {
	return &Handler{
		citas:   citas,
		widgets: w,
		log:     log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.landing)
	r.Post("/citas", h.agendar)
	r.Get("/citas/{citaID}/eliminar", h.confirmarEliminar)
	r.Post("/citas/{citaID}/eliminar", h.eliminar)
}

// RenderLanding es la función de render pura: estado → HTML. Separada del
// handler para poder testearla sin servidor.
func RenderLanding(w io.Writer, data LandingData) error {
	return landingTpl.Execute(w, data)
}

func (h *Handler) landing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.citas.List(ctx)
	if err != nil {
		h.log.Error("listing citas failed", map[string]any{"error": err.Error()})
		http.Error(w, "error interno", http.StatusInternalServerError)
		return
	}

	data := LandingData{
		Clima:     h.widgets.Clima(ctx),
		Frase:     h.widgets.Frase(ctx),
		Citas:     BuildCards(items),
		Servicios: servicioOptions(),
		Flash:     flashFromQuery(r.URL.Query().Get("estado")),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := RenderLanding(w, data); err != nil {
		h.log.Error("render landing failed", map[string]any{"error": err.Error()})
	}
}

// agendar corre el flujo del formulario y redirige con el resultado.
// El anchor de la redirección posiciona al usuario: éxito lleva a la
// lista de citas, error de vuelta al formulario.
func (h *Handler) agendar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/?estado=error#contacto", http.StatusSeeOther)
		return
	}

	_, err := h.citas.Submit(r.Context(), appointments.SubmitInput{
		Nombre:   r.PostFormValue("nombre"),
		Email:    r.PostFormValue("email"),
		Telefono: r.PostFormValue("telefono"),
		Mascota:  r.PostFormValue("mascota"),
		Servicio: r.PostFormValue("servicio"),
		Mensaje:  r.PostFormValue("mensaje"),
	})

	switch {
	case err == nil:
		http.Redirect(w, r, "/?estado=ok#citas", http.StatusSeeOther)
	case errors.Is(err, appointments.ErrPersist):
		http.Redirect(w, r, "/?estado=advertencia#citas", http.StatusSeeOther)
	case errors.Is(err, appointments.ErrInvalidInput):
		http.Redirect(w, r, "/?estado=invalido#contacto", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/?estado=error#contacto", http.StatusSeeOther)
	}
}

// confirmarEliminar interpone la página de confirmación antes de borrar;
// "Cancelar" vuelve a la lista sin tocar nada.
func (h *Handler) confirmarEliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "citaID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	items, err := h.citas.List(r.Context())
	if err != nil {
		http.Error(w, "error interno", http.StatusInternalServerError)
		return
	}

	for _, a := range items {
		if a.ID == id {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			card := BuildCards([]appointments.Appointment{a})[0]
			if err := confirmarTpl.Execute(w, card); err != nil {
				h.log.Error("render confirmar failed", map[string]any{"error": err.Error()})
			}
			return
		}
	}
	http.NotFound(w, r)
}

func (h *Handler) eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "citaID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.citas.Remove(r.Context(), id); err != nil {
		if errors.Is(err, appointments.ErrPersist) {
			// Eliminada en memoria pero no en el archivo; mismo trato
			// de advertencia que en el alta.
			h.log.Warn("cita removed in memory only", map[string]any{"id": id, "error": err.Error()})
			http.Redirect(w, r, "/?estado=eliminada#citas", http.StatusSeeOther)
			return
		}
		h.log.Error("remove cita failed", map[string]any{"id": id, "error": err.Error()})
		http.Error(w, "error interno", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/#citas", http.StatusSeeOther)
}

func flashFromQuery(estado string) *Flash {
	switch estado {
	case "ok":
		return &Flash{Tipo: "success", Mensaje: msgExito}
	case "advertencia":
		return &Flash{Tipo: "warning", Mensaje: msgAdvertencia}
	case "eliminada":
		return &Flash{Tipo: "warning", Mensaje: msgEliminada}
	case "invalido":
		return &Flash{Tipo: "error", Mensaje: msgInvalido}
	case "error":
		return &Flash{Tipo: "error", Mensaje: msgError}
	default:
		return nil
	}
}
