package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"photocast/internal/logger"
	"photocast/internal/models"
)

// FetchWeather fetches current weather from OpenWeather and maps it to a
// WeatherSnapshot.
func (s *APISource) FetchWeather(ctx context.Context, loc models.Location) (*models.WeatherSnapshot, error) {
	raw, err := s.fetchOpenWeather(ctx, loc)
	if err != nil {
		return nil, err
	}
	return weatherSnapshotFrom(raw), nil
}

// fetchOpenWeather performs the current-weather API call.
func (s *APISource) fetchOpenWeather(ctx context.Context, loc models.Location) (*models.OpenWeatherResponse, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"lat":   fmt.Sprintf("%.4f", loc.Latitude),
			"lon":   fmt.Sprintf("%.4f", loc.Longitude),
			"units": "metric",
			"appid": s.cfg.APIKey,
		}).
		Get(s.cfg.WeatherURL)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}

	switch resp.StatusCode() {
	case 200:
	case 401:
		return nil, fmt.Errorf("weather API rejected the API key (status 401)")
	case 429:
		return nil, fmt.Errorf("weather API rate limit exceeded (status 429)")
	default:
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode())
	}

	var data models.OpenWeatherResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}

	return &data, nil
}

// ResolveCity resolves a city name to coordinates via the geocoding endpoint.
func (s *APISource) ResolveCity(ctx context.Context, city string) (models.Location, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"q":     city,
			"limit": "1",
			"appid": s.cfg.APIKey,
		}).
		Get(s.cfg.GeocodingURL)

	if err != nil {
		return models.Location{}, fmt.Errorf("failed to geocode %q: %w", city, err)
	}

	if resp.StatusCode() != 200 {
		return models.Location{}, fmt.Errorf("geocoding API returned status %d", resp.StatusCode())
	}

	var entries []models.GeocodingResponse
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return models.Location{}, fmt.Errorf("failed to parse geocoding response: %w", err)
	}
	if len(entries) == 0 {
		return models.Location{}, fmt.Errorf("city %q not found", city)
	}

	return models.NewLocation(entries[0].Name, entries[0].Latitude, entries[0].Longitude)
}

// weatherSnapshotFrom normalizes an OpenWeather response: wind m/s to km/h,
// visibility meters to km, condition code to a precipitation class.
func weatherSnapshotFrom(raw *models.OpenWeatherResponse) *models.WeatherSnapshot {
	snapshot := &models.WeatherSnapshot{
		Temperature:   raw.Main.Temp,
		CloudCoverPct: raw.Clouds.All,
		VisibilityKm:  raw.Visibility / 1000.0,
		WindSpeedKmh:  raw.Wind.Speed * 3.6,
		Precipitation: models.PrecipitationNone,
		Timestamp:     time.Unix(raw.Dt, 0).UTC(),
	}

	if len(raw.Weather) > 0 {
		snapshot.Description = raw.Weather[0].Description
		snapshot.Precipitation = precipitationFromCode(raw.Weather[0].ID)
	}

	logger.Debug("normalized weather snapshot", map[string]interface{}{
		"temperature":   snapshot.Temperature,
		"cloud_cover":   snapshot.CloudCoverPct,
		"precipitation": snapshot.Precipitation,
	})

	return snapshot
}

// precipitationFromCode maps OpenWeather condition groups: 2xx thunderstorm,
// 3xx drizzle and 5xx rain, 6xx snow, 7xx atmosphere (fog, ash), 800+ clear
// or clouds.
func precipitationFromCode(code int) models.Precipitation {
	switch {
	case code >= 200 && code < 300:
		return models.PrecipitationRain
	case code >= 300 && code < 600:
		return models.PrecipitationRain
	case code >= 600 && code < 700:
		return models.PrecipitationSnow
	case code >= 700 && code < 800:
		return models.PrecipitationOther
	default:
		return models.PrecipitationNone
	}
}
