package fetchers

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"photocast/internal/models"
)

// DataSource supplies the snapshots the dashboard computes from. The core is
// agnostic to what backs it: live APIs, a cache, or static demo data.
type DataSource interface {
	FetchWeather(ctx context.Context, loc models.Location) (*models.WeatherSnapshot, error)
	FetchSolar(ctx context.Context, loc models.Location) (*models.SolarSnapshot, error)
	FetchAlerts(ctx context.Context) ([]models.SpaceWeatherAlert, error)
}

// APIConfig holds the endpoints and credentials for the live data source.
// Passed in at construction time; nothing here is read from the environment.
type APIConfig struct {
	APIKey        string
	WeatherURL    string
	GeocodingURL  string
	NOAAKIndexURL string
	NOAAMagURL    string
	AlertsRSSURL  string
}

// APISource fetches live data from OpenWeather and NOAA SWPC plus the solar
// events RSS feed.
type APISource struct {
	client *resty.Client
	parser *gofeed.Parser
	cfg    APIConfig
}

// NewAPISource creates a live data source with retry-enabled HTTP transport.
func NewAPISource(cfg APIConfig) *APISource {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(2 * time.Second)

	return &APISource{
		client: client,
		parser: gofeed.NewParser(),
		cfg:    cfg,
	}
}
