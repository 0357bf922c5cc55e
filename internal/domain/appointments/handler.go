package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/citas", func(cr chi.Router) {
		cr.Get("/", listHandler(svc))
		cr.Post("/", createHandler(svc))
		cr.Delete("/{citaID}", deleteHandler(svc))
	})
}

type createRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Mascota  string `json:"mascota"`
	Servicio string `json:"servicio"`
	Mensaje  string `json:"mensaje"`
}

type citaResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Mascota  string `json:"mascota"`
	Servicio string `json:"servicio"`
	// Nombre visible del servicio, ya mapeado (códigos desconocidos
	// pasan tal cual).
	ServicioNombre string `json:"servicio_nombre"`
	Mensaje        string `json:"mensaje,omitempty"`
	Fecha          string `json:"fecha"`

	// true cuando la cita quedó sólo en memoria porque la escritura
	// duradera falló.
	Advertencia bool `json:"advertencia,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type deleteResponse struct {
	// true cuando la cita se eliminó en memoria pero la escritura
	// duradera falló.
	Advertencia bool `json:"advertencia"`
}

// listHandler godoc
// @Summary  Lista las citas agendadas
// @Tags     citas
// @Produce  json
// @Success  200 {array} citaResponse
// @Router   /api/citas [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		out := make([]citaResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toCitaResponse(a, false))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createHandler godoc
// @Summary  Agenda una cita (valida, crea la reserva remota y la guarda)
// @Tags     citas
// @Accept   json
// @Produce  json
// @Param    cita body createRequest true "Datos del formulario"
// @Success  201 {object} citaResponse
// @Failure  400 {object} errorResponse
// @Failure  502 {object} errorResponse
// @Router   /api/citas [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		a, err := svc.Submit(r.Context(), SubmitInput{
			Nombre:   req.Nombre,
			Email:    req.Email,
			Telefono: req.Telefono,
			Mascota:  req.Mascota,
			Servicio: req.Servicio,
			Mensaje:  req.Mensaje,
		})

		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, toCitaResponse(a, false))
		case errors.Is(err, ErrPersist):
			// La cita existe para esta sesión aunque el archivo no se
			// pudo escribir; se avisa en el payload.
			writeJSON(w, http.StatusCreated, toCitaResponse(a, true))
		case errors.Is(err, ErrInvalidInput):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "completa todos los campos requeridos"})
		case errors.Is(err, ErrRemote):
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "no se pudo agendar la cita, intenta nuevamente"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
	}
}

// deleteHandler godoc
// @Summary  Elimina una cita por id (idempotente)
// @Tags     citas
// @Produce  json
// @Param    citaID path int true "ID de la cita"
// @Success  200 {object} deleteResponse
// @Success  204
// @Failure  400 {object} errorResponse
// @Router   /api/citas/{citaID} [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "citaID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id inválido"})
			return
		}

		if err := svc.Remove(r.Context(), id); err != nil {
			if errors.Is(err, ErrPersist) {
				// Borrada en memoria; el archivo se reintentará en la
				// próxima mutación.
				writeJSON(w, http.StatusOK, deleteResponse{Advertencia: true})
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toCitaResponse(a Appointment, warn bool) citaResponse {
	return citaResponse{
		ID:             a.ID,
		Nombre:         a.Nombre,
		Email:          a.Email,
		Telefono:       a.Telefono,
		Mascota:        a.Mascota,
		Servicio:       string(a.Servicio),
		ServicioNombre: ServiceName(a.Servicio),
		Mensaje:        a.Mensaje,
		Fecha:          a.Fecha,
		Advertencia:    warn,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
