package widgets

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	cachemem "lisvet-landing/internal/adapters/cache/memory"
	"lisvet-landing/internal/platform/logger"
	"lisvet-landing/internal/ports/quotes"
	"lisvet-landing/internal/ports/weather"
)

type fakeWeather struct {
	calls int
	obs   weather.Observation
	err   error
}

func (f *fakeWeather) Current(ctx context.Context) (weather.Observation, error) {
	f.calls++
	return f.obs, f.err
}

type fakeQuotes struct {
	calls int
	q     quotes.Quote
	err   error
}

func (f *fakeQuotes) Random(ctx context.Context) (quotes.Quote, error) {
	f.calls++
	return f.q, f.err
}

func newTestService(w weather.Provider, q quotes.Provider) *Service {
	return NewService(w, q, cachemem.New(), time.Minute, logger.New(logger.Options{Level: logger.Error}))
}

func TestWeatherEmoji_Buckets(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{0, "☀️"},
		{1, "⛅"},
		{3, "⛅"},
		{45, "☁️"},
		{48, "☁️"},
		{61, "🌧️"},
		{67, "🌧️"},
		{71, "❄️"},
		{77, "❄️"},
		{80, "🌦️"},
		{82, "🌦️"},
		{95, "🌤️"},
	}

	for _, c := range cases {
		if got := WeatherEmoji(c.code); got != c.want {
			t.Errorf("WeatherEmoji(%d) = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestClima_Success(t *testing.T) {
	fw := &fakeWeather{obs: weather.Observation{TemperatureC: 24.5, Code: 0}}
	svc := newTestService(fw, &fakeQuotes{})

	v := svc.Clima(context.Background())
	if v.Fallback {
		t.Fatalf("unexpected fallback: %+v", v)
	}
	if v.Emoji != "☀️" {
		t.Fatalf("unexpected emoji: %q", v.Emoji)
	}
	if !strings.Contains(v.Texto, "24.5°C") {
		t.Fatalf("texto should carry the temperature, got %q", v.Texto)
	}
}

func TestClima_ProviderFailure_UsesFallback(t *testing.T) {
	fw := &fakeWeather{err: errors.New("http error: status=500")}
	svc := newTestService(fw, &fakeQuotes{})

	v := svc.Clima(context.Background())
	if !v.Fallback {
		t.Fatalf("expected fallback view, got %+v", v)
	}
	if v.Texto != "🌤️ Clima en Guayaquil" {
		t.Fatalf("unexpected fallback text: %q", v.Texto)
	}
}

func TestClima_SecondCallServedFromCache(t *testing.T) {
	fw := &fakeWeather{obs: weather.Observation{TemperatureC: 20, Code: 2}}
	svc := newTestService(fw, &fakeQuotes{})

	first := svc.Clima(context.Background())
	second := svc.Clima(context.Background())

	if fw.calls != 1 {
		t.Fatalf("expected a single upstream call, got %d", fw.calls)
	}
	if first.Texto != second.Texto {
		t.Fatalf("cached view differs: %q vs %q", first.Texto, second.Texto)
	}
}

func TestClima_FallbackIsNotCached(t *testing.T) {
	fw := &fakeWeather{err: errors.New("down")}
	svc := newTestService(fw, &fakeQuotes{})

	_ = svc.Clima(context.Background())
	_ = svc.Clima(context.Background())

	// Cada render reintenta mientras el upstream siga caído.
	if fw.calls != 2 {
		t.Fatalf("fallback should not be cached, got %d calls", fw.calls)
	}
}

func TestFrase_Success(t *testing.T) {
	fq := &fakeQuotes{q: quotes.Quote{Texto: "Sé el cambio.", Autor: "Gandhi"}}
	svc := newTestService(&fakeWeather{}, fq)

	v := svc.Frase(context.Background())
	if v.Fallback || v.Texto != "Sé el cambio." || v.Autor != "Gandhi" {
		t.Fatalf("unexpected view: %+v", v)
	}
}

func TestFrase_ProviderFailure_UsesDarwinFallback(t *testing.T) {
	fq := &fakeQuotes{err: errors.New("down")}
	svc := newTestService(&fakeWeather{}, fq)

	v := svc.Frase(context.Background())
	if !v.Fallback {
		t.Fatalf("expected fallback, got %+v", v)
	}
	if v.Autor != "Charles Darwin" {
		t.Fatalf("unexpected fallback author: %q", v.Autor)
	}
	if !strings.Contains(v.Texto, "criaturas vivientes") {
		t.Fatalf("unexpected fallback text: %q", v.Texto)
	}
}
