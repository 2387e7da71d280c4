package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the photography dashboard
type Config struct {
	// Location
	City      string  `env:"CITY,default=Tromso"`
	Latitude  float64 `env:"LATITUDE,default=69.6492"`
	Longitude float64 `env:"LONGITUDE,default=18.9553"`

	// GeocodeCity resolves coordinates from CITY via the geocoding API,
	// overriding LATITUDE and LONGITUDE. Requires an OpenWeather key.
	GeocodeCity bool `env:"GEOCODE_CITY,default=false"`

	// OpenWeather configuration
	OpenWeatherAPIKey string `env:"OPENWEATHER_API_KEY"`

	// Demo mode serves static data instead of calling the live APIs
	DemoMode bool `env:"DEMO_MODE,default=false"`

	// Data source URLs
	WeatherURL    string `env:"WEATHER_URL,default=https://api.openweathermap.org/data/2.5/weather"`
	GeocodingURL  string `env:"GEOCODING_URL,default=https://api.openweathermap.org/geo/1.0/direct"`
	NOAAKIndexURL string `env:"NOAA_K_INDEX_URL,default=https://services.swpc.noaa.gov/json/planetary_k_index_1m.json"`
	NOAAMagURL    string `env:"NOAA_MAG_URL,default=https://services.swpc.noaa.gov/json/rtsw/rtsw_mag_1m.json"`
	AlertsRSSURL  string `env:"ALERTS_RSS_URL,default=https://www.sidc.be/products/meu"`

	// Report export
	ReportsDir  string `env:"REPORTS_DIR,default=./reports"`
	SaveReport  bool   `env:"SAVE_REPORT,default=false"`
	RenderChart bool   `env:"RENDER_CHART,default=false"`

	// Optional OpenAI narrative
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-4o-mini"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.Latitude < -90 || cfg.Latitude > 90 {
		return nil, fmt.Errorf("LATITUDE %.4f out of range [-90,90]", cfg.Latitude)
	}
	if cfg.Longitude < -180 || cfg.Longitude > 180 {
		return nil, fmt.Errorf("LONGITUDE %.4f out of range [-180,180]", cfg.Longitude)
	}
	return &cfg, nil
}
