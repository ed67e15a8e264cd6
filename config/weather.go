package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const defaultWeatherBaseURL = "https://api.open-meteo.com"

// Weather is one current-conditions snapshot. The zero value means "no data".
type Weather struct {
	Temperature *float64 `json:"temperature"`
	Condition   string   `json:"condition"`
}

func (w Weather) IsZero() bool {
	return w.Temperature == nil && w.Condition == ""
}

// WeatherClient fetches current conditions from Open-Meteo.
type WeatherClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

func NewWeatherClient() *WeatherClient {
	baseURL := os.Getenv("WEATHER_API_URL")
	if baseURL == "" {
		baseURL = defaultWeatherBaseURL
	}
	return &WeatherClient{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
		Timeout:    3 * time.Second,
	}
}

// Current returns the conditions at the given coordinates. Any failure
// (network error, timeout, non-200, malformed body) yields the empty
// snapshot, so a slow or dead weather API can never fail a feed request.
func (wc *WeatherClient) Current(ctx context.Context, lat, lng float64) Weather {
	ctx, cancel := context.WithTimeout(ctx, wc.Timeout)
	defer cancel()

	url := fmt.Sprintf("%s/v1/forecast?latitude=%.4f&longitude=%.4f&current_weather=true", wc.BaseURL, lat, lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Weather{}
	}

	resp, err := wc.HTTPClient.Do(req)
	if err != nil {
		return Weather{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Weather{}
	}

	var payload struct {
		CurrentWeather *struct {
			Temperature float64 `json:"temperature"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.CurrentWeather == nil {
		return Weather{}
	}

	temp := payload.CurrentWeather.Temperature
	return Weather{
		Temperature: &temp,
		Condition:   conditionFromCode(payload.CurrentWeather.WeatherCode),
	}
}

// conditionFromCode maps WMO weather interpretation codes to condition text.
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code == 1:
		return "mainly clear"
	case code == 2:
		return "partly cloudy"
	case code == 3:
		return "overcast"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code >= 61 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "rain showers"
	case code == 85 || code == 86:
		return "snow showers"
	case code >= 95:
		return "thunderstorm"
	default:
		return "unknown"
	}
}
