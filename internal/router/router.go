package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "lisvet-landing/docs"
	cachemem "lisvet-landing/internal/adapters/cache/memory"
	cacheredis "lisvet-landing/internal/adapters/cache/redis"
	"lisvet-landing/internal/adapters/quotes/quotable"
	"lisvet-landing/internal/adapters/scheduling/placeholder"
	"lisvet-landing/internal/adapters/storage/jsonfile"
	storagemem "lisvet-landing/internal/adapters/storage/memory"
	pg "lisvet-landing/internal/adapters/storage/postgres"
	"lisvet-landing/internal/adapters/weather/openmeteo"
	"lisvet-landing/internal/config"
	"lisvet-landing/internal/domain/appointments"
	"lisvet-landing/internal/domain/widgets"
	"lisvet-landing/internal/middleware"
	"lisvet-landing/internal/platform/httpclient"
	"lisvet-landing/internal/platform/logger"
	cacheport "lisvet-landing/internal/ports/cache"
	"lisvet-landing/internal/web"
)

type Options struct {
	Config *config.Config
	Logger logger.Logger

	// Overrides para tests; si vienen nil se construyen desde Config.
	CitasRepo appointments.Repository
	Cache     cacheport.Cache
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Load()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Persistencia de citas: Postgres si hay DSN, si no el archivo JSON;
	// memoria pura sólo cuando no hay archivo configurado (tests/dev).
	citasRepo := opts.CitasRepo
	if citasRepo == nil {
		switch {
		case cfg.DBUrl != "":
			db, err := pg.Open(cfg.DBUrl)
			if err != nil {
				log.Error("postgres unavailable, falling back to file", map[string]any{"error": err.Error()})
				citasRepo = jsonfile.NewCitasRepo(cfg.DataFile, log)
			} else {
				citasRepo = pg.NewCitasRepo(db)
			}
		case cfg.DataFile != "":
			citasRepo = jsonfile.NewCitasRepo(cfg.DataFile, log)
		default:
			citasRepo = storagemem.NewCitasRepo()
		}
	}

	// Cache de widgets: Redis si está configurado, si no memoria.
	widgetCache := opts.Cache
	if widgetCache == nil {
		if cfg.RedisAddr != "" {
			rc := cacheredis.New(cfg.RedisAddr)
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := rc.Ping(pingCtx); err != nil {
				// Redis caído no es fatal: cada Get se trata como miss.
				log.Warn("redis unreachable, widget cache will miss", map[string]any{
					"addr":  cfg.RedisAddr,
					"error": err.Error(),
				})
			}
			cancel()
			widgetCache = rc
		} else {
			widgetCache = cachemem.New()
		}
	}

	hc := httpclient.New(cfg.HTTPTimeout)

	sink := placeholder.NewClient(cfg.BookingURL, hc)
	weatherProv := openmeteo.NewClient(cfg.WeatherURL, hc)
	quoteProv := quotable.NewClient(cfg.QuoteURL, hc)

	citasSvc := appointments.NewService(citasRepo, sink, log)
	widgetsSvc := widgets.NewService(weatherProv, quoteProv, widgetCache, cfg.CacheTTL, log)

	// Página (HTML)
	webHandler := web.NewHandler(citasSvc, widgetsSvc, log)
	webHandler.RegisterRoutes(r)

	// API (JSON)
	appointments.RegisterRoutes(r, citasSvc)
	widgets.RegisterRoutes(r, widgetsSvc)

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
