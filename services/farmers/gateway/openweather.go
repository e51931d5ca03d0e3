package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/agrosmart/agrofarm/internal/pkg/models"
)

// WeatherGW fetches current weather from OpenWeatherMap
type WeatherGW struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewWeatherGW creates a new weather gateway
func NewWeatherGW(cfg models.WeatherConfig) *WeatherGW {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &WeatherGW{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// openWeatherResponse mirrors the OpenWeatherMap current-weather payload
type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
		Pressure int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

// FetchWeather fetches the current weather for a district in metric units
func (g *WeatherGW) FetchWeather(ctx context.Context, district string) (*models.WeatherReport, error) {
	reqURL := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric", g.baseURL, url.QueryEscape(district), g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	report := &models.WeatherReport{
		Location:    district,
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Pressure:    payload.Main.Pressure,
		Sunrise:     payload.Sys.Sunrise,
		Sunset:      payload.Sys.Sunset,
	}
	if len(payload.Weather) > 0 {
		report.Description = payload.Weather[0].Description
	}

	return report, nil
}
