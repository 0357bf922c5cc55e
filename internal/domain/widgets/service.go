package widgets

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"lisvet-landing/internal/platform/logger"
	"lisvet-landing/internal/ports/cache"
	"lisvet-landing/internal/ports/quotes"
	"lisvet-landing/internal/ports/weather"
)

// Los widgets nunca fallan hacia afuera: cualquier error upstream termina
// en el contenido de respaldo.

const (
	cacheKeyClima = "widgets:clima"
	cacheKeyFrase = "widgets:frase"

	fallbackClima = "🌤️ Clima en Guayaquil"
	fallbackFrase = "El amor por todas las criaturas vivientes es el atributo más noble del hombre."
	fallbackAutor = "Charles Darwin"
)

type WeatherView struct {
	Emoji        string  `json:"emoji"`
	TemperaturaC float64 `json:"temperatura_c"`
	Texto        string  `json:"texto"`
	Fallback     bool    `json:"fallback,omitempty"`
}

type QuoteView struct {
	Texto    string `json:"texto"`
	Autor    string `json:"autor"`
	Fallback bool   `json:"fallback,omitempty"`
}

// WeatherEmoji mapea el código WMO a su bucket de emoji.
func WeatherEmoji(code int) string {
	switch {
	case code == 0:
		return "☀️"
	case code <= 3:
		return "⛅"
	case code <= 48:
		return "☁️"
	case code <= 67:
		return "🌧️"
	case code <= 77:
		return "❄️"
	case code <= 82:
		return "🌦️"
	default:
		return "🌤️"
	}
}

type Service struct {
	weather weather.Provider
	quotes  quotes.Provider
	cache   cache.Cache
	ttl     time.Duration
	log     logger.Logger
}

func NewService(w weather.Provider, q quotes.Provider, c cache.Cache, ttl time.Duration, log logger.Logger) *Service {
	return &Service{
		weather: w,
		quotes:  q,
		cache:   c,
		ttl:     ttl,
		log:     log,
	}
}

// Clima devuelve la línea de clima actual, cacheada por TTL para no
// golpear la API pública en cada render de la página.
func (s *Service) Clima(ctx context.Context) WeatherView {
	if raw, ok := s.cache.Get(ctx, cacheKeyClima); ok {
		var v WeatherView
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			return v
		}
	}

	obs, err := s.weather.Current(ctx)
	if err != nil {
		s.log.Warn("weather fetch failed, using fallback", map[string]any{"error": err.Error()})
		return WeatherView{Emoji: "🌤️", Texto: fallbackClima, Fallback: true}
	}

	emoji := WeatherEmoji(obs.Code)
	v := WeatherView{
		Emoji:        emoji,
		TemperaturaC: obs.TemperatureC,
		Texto: fmt.Sprintf("%s Clima actual en Guayaquil: %s°C",
			emoji, strconv.FormatFloat(obs.TemperatureC, 'f', -1, 64)),
	}
	s.put(ctx, cacheKeyClima, v)
	return v
}

// Frase devuelve la frase inspiracional del momento, también cacheada.
func (s *Service) Frase(ctx context.Context) QuoteView {
	if raw, ok := s.cache.Get(ctx, cacheKeyFrase); ok {
		var v QuoteView
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			return v
		}
	}

	q, err := s.quotes.Random(ctx)
	if err != nil {
		s.log.Warn("quote fetch failed, using fallback", map[string]any{"error": err.Error()})
		return QuoteView{Texto: fallbackFrase, Autor: fallbackAutor, Fallback: true}
	}

	v := QuoteView{Texto: q.Texto, Autor: q.Autor}
	s.put(ctx, cacheKeyFrase, v)
	return v
}

// put sólo cachea respuestas reales; los fallbacks no se guardan para
// reintentar apenas el upstream vuelva.
func (s *Service) put(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, string(b), s.ttl)
}
