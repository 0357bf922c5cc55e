// Package openmeteo implementa el provider de clima contra el endpoint
// de pronóstico de open-meteo (la URL completa, con coordenadas y
// timezone, viene de config).
package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lisvet-landing/internal/platform/httpclient"
	"lisvet-landing/internal/ports/weather"
)

var ErrNotConfigured = errors.New("weather provider not configured")

type Client struct {
	url  string
	http *httpclient.Client
}

func NewClient(url string, hc *httpclient.Client) *Client {
	return &Client{
		url:  strings.TrimSpace(url),
		http: hc,
	}
}

type forecastResponse struct {
	Current struct {
		Temperature2m float64 `json:"temperature_2m"`
		WeatherCode   int     `json:"weather_code"`
	} `json:"current"`
}

func (c *Client) Current(ctx context.Context) (weather.Observation, error) {
	if c == nil || c.url == "" {
		return weather.Observation{}, ErrNotConfigured
	}

	var out forecastResponse
	if err := c.http.GetJSON(ctx, c.url, &out); err != nil {
		return weather.Observation{}, fmt.Errorf("openmeteo: %w", err)
	}

	return weather.Observation{
		TemperatureC: out.Current.Temperature2m,
		Code:         out.Current.WeatherCode,
	}, nil
}
