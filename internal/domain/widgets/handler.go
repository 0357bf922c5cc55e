package widgets

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/widgets", func(wr chi.Router) {
		wr.Get("/clima", climaHandler(svc))
		wr.Get("/frase", fraseHandler(svc))
	})
}

// climaHandler godoc
// @Summary  Clima actual en Guayaquil (con respaldo estático si la API falla)
// @Tags     widgets
// @Produce  json
// @Success  200 {object} WeatherView
// @Router   /api/widgets/clima [get]
func climaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Clima(r.Context()))
	}
}

// fraseHandler godoc
// @Summary  Frase inspiracional aleatoria (con respaldo estático si la API falla)
// @Tags     widgets
// @Produce  json
// @Success  200 {object} QuoteView
// @Router   /api/widgets/frase [get]
func fraseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Frase(r.Context()))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
