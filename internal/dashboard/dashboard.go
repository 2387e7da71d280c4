// Package dashboard orchestrates the photography pipeline and renders the
// console view. A Summary is the fully computed state for one location at
// one instant; every output surface (console, report files, charts) renders
// from the same Summary.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"photocast/internal/aurora"
	"photocast/internal/fetchers"
	"photocast/internal/goldenhour"
	"photocast/internal/logger"
	"photocast/internal/models"
	"photocast/internal/outlook"
	"photocast/internal/scoring"
	"photocast/internal/tips"
)

// Summary is the computed dashboard state for one location and instant.
type Summary struct {
	City        string
	Location    models.Location
	GeneratedAt time.Time

	Weather *models.WeatherSnapshot
	Solar   *models.SolarSnapshot
	Window  *goldenhour.Window
	Aurora  aurora.Estimate
	Score   scoring.Score
	Tips    []string
	Alerts  []models.SpaceWeatherAlert
	Outlook *outlook.Outlook

	// Narrative is an optional LLM-written paragraph, empty when the
	// feature is disabled.
	Narrative string
}

// clock is implemented by data sources that carry their own notion of now.
type clock interface {
	Now() time.Time
}

// Build runs the full pipeline against a data source: fetch weather, solar
// and alerts, then compute golden hours, aurora visibility, the score, tips
// and the 24 hour outlook.
func Build(ctx context.Context, src fetchers.DataSource, city string, loc models.Location) (*Summary, error) {
	now := time.Now().UTC()
	if c, ok := src.(clock); ok {
		now = c.Now()
	}

	logger.Info("Building dashboard", map[string]interface{}{
		"city": city,
		"lat":  loc.Latitude,
		"lon":  loc.Longitude,
	})

	weather, err := src.FetchWeather(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}

	solar, err := src.FetchSolar(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch solar data: %w", err)
	}

	// Alerts are informational; a feed outage never blocks the dashboard.
	alerts, err := src.FetchAlerts(ctx)
	if err != nil {
		logger.Warn("Failed to fetch space weather alerts", map[string]interface{}{
			"error": err.Error(),
		})
		alerts = nil
	}

	window, err := goldenhour.Compute(solar, now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute golden hours: %w", err)
	}

	est := aurora.EstimateVisibility(solar, loc, weather.CloudCoverPct, window, now)
	score := scoring.ScoreConditions(weather, window, est)
	advice := tips.Generate(weather, window, est, score, now)
	out := outlook.Build(weather, solar, loc, window, now)

	logger.Info("Dashboard ready", map[string]interface{}{
		"score":   score.Value,
		"verdict": string(score.Verdict),
		"aurora":  est.ProbabilityPct,
	})

	return &Summary{
		City:        city,
		Location:    loc,
		GeneratedAt: now,
		Weather:     weather,
		Solar:       solar,
		Window:      window,
		Aurora:      est,
		Score:       score,
		Tips:        advice,
		Alerts:      alerts,
		Outlook:     out,
	}, nil
}
