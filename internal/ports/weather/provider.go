package weather

import "context"

// Observation es la lectura mínima que necesita el widget: temperatura
// actual y el código numérico de condición (escala WMO).
type Observation struct {
	TemperatureC float64
	Code         int
}

// Provider trae el clima actual de la ubicación fija de la clínica.
type Provider interface {
	Current(ctx context.Context) (Observation, error)
}
