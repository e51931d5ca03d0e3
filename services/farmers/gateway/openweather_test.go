package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosmart/agrofarm/internal/pkg/models"
)

func newTestGateway(serverURL string) *WeatherGW {
	return NewWeatherGW(models.WeatherConfig{
		BaseURL: serverURL,
		APIKey:  "test-api-key",
		Timeout: 2,
	})
}

func TestFetchWeather_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Madurai", r.URL.Query().Get("q"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"main": {"temp": 31.4, "humidity": 48, "pressure": 1009},
			"weather": [{"description": "haze"}],
			"wind": {"speed": 2.1},
			"sys": {"sunrise": 1717206000, "sunset": 1717252800}
		}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)

	report, err := gw.FetchWeather(context.Background(), "Madurai")

	require.NoError(t, err)
	assert.Equal(t, "Madurai", report.Location)
	assert.Equal(t, 31.4, report.Temperature)
	assert.Equal(t, 48, report.Humidity)
	assert.Equal(t, "haze", report.Description)
	assert.Equal(t, 2.1, report.WindSpeed)
	assert.Equal(t, 1009, report.Pressure)
	assert.Equal(t, int64(1717206000), report.Sunrise)
	assert.Equal(t, int64(1717252800), report.Sunset)
}

func TestFetchWeather_DistrictWithSpaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "East Godavari", r.URL.Query().Get("q"))
		w.Write([]byte(`{"main": {"temp": 27, "humidity": 80}}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)

	report, err := gw.FetchWeather(context.Background(), "East Godavari")

	require.NoError(t, err)
	assert.Equal(t, "East Godavari", report.Location)
	assert.Empty(t, report.Description)
}

func TestFetchWeather_ProviderError(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
	}{
		{name: "Unauthorized", statusCode: http.StatusUnauthorized},
		{name: "Not Found", statusCode: http.StatusNotFound},
		{name: "Server Error", statusCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
			}))
			defer server.Close()

			gw := newTestGateway(server.URL)

			report, err := gw.FetchWeather(context.Background(), "Madurai")

			assert.Error(t, err)
			assert.Nil(t, report)
			assert.Contains(t, err.Error(), "status")
		})
	}
}

func TestFetchWeather_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main": `))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)

	report, err := gw.FetchWeather(context.Background(), "Madurai")

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestFetchWeather_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"main": {"temp": 25, "humidity": 60}}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	report, err := gw.FetchWeather(ctx, "Madurai")

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestFetchWeather_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gw := newTestGateway(server.URL)

	report, err := gw.FetchWeather(context.Background(), "Madurai")

	assert.Error(t, err)
	assert.Nil(t, report)
}
