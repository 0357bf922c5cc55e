package main

import (
	"log"
	"net/http"
	"time"

	"lisvet-landing/internal/config"
	"lisvet-landing/internal/platform/logger"
	"lisvet-landing/internal/router"
)

// @title        Lis-Vet API
// @version      1.0
// @description  API de la landing de la clínica veterinaria Lis-Vet: citas y widgets.
// @BasePath     /
func main() {
	cfg := config.Load()
	lg := logger.NewFromEnv()

	r := router.NewRouter(router.Options{
		Config: cfg,
		Logger: lg,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": cfg.Addr()})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
