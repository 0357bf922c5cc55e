package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config concentra toda la configuración del servicio.
// Todo viene de env vars (con .env opcional para dev) y tiene defaults
// que levantan el servicio sin configurar nada.
type Config struct {
	ServerPort string

	// Persistencia de citas. Si DBUrl está seteado se usa Postgres;
	// si no, el archivo JSON local.
	DataFile string
	DBUrl    string

	// Cache para los widgets. Vacío => cache en memoria.
	RedisAddr string
	CacheTTL  time.Duration

	// Endpoints externos.
	BookingURL string
	WeatherURL string
	QuoteURL   string

	// Timeout para todas las llamadas salientes.
	HTTPTimeout time.Duration
}

const (
	defaultDataFile = "lisvet_appointments.json"

	defaultBookingURL = "https://jsonplaceholder.typicode.com/posts"
	defaultWeatherURL = "https://api.open-meteo.com/v1/forecast?latitude=-2.1894&longitude=-79.8886&current=temperature_2m,weather_code&timezone=America/Guayaquil"
	defaultQuoteURL   = "https://api.quotable.io/random?tags=inspirational"
)

func Load() *Config {
	// .env es opcional; en producción las vars vienen del entorno.
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("PORT", "8080"),
		DataFile:    getEnv("DATA_FILE", defaultDataFile),
		DBUrl:       getEnv("DB_DSN", ""),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		CacheTTL:    getDuration("CACHE_TTL", 10*time.Minute),
		BookingURL:  getEnv("BOOKING_URL", defaultBookingURL),
		WeatherURL:  getEnv("WEATHER_URL", defaultWeatherURL),
		QuoteURL:    getEnv("QUOTE_URL", defaultQuoteURL),
		HTTPTimeout: getDuration("HTTP_TIMEOUT", 10*time.Second),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	// También aceptamos segundos planos ("30" => 30s).
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
