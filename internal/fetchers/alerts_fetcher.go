package fetchers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"photocast/internal/models"
)

// alertWindow limits the alerts section to recent events.
const alertWindow = 7 * 24 * time.Hour

// FetchAlerts fetches the solar events RSS feed and keeps recent items,
// classified by severity keywords.
func (s *APISource) FetchAlerts(ctx context.Context) ([]models.SpaceWeatherAlert, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.cfg.AlertsRSSURL)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch alerts feed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("alerts feed returned status %d", resp.StatusCode())
	}

	feed, err := s.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse alerts feed: %w", err)
	}

	cutoff := time.Now().Add(-alertWindow)
	var alerts []models.SpaceWeatherAlert
	for _, item := range feed.Items {
		if item.PublishedParsed == nil || item.PublishedParsed.Before(cutoff) {
			continue
		}
		alerts = append(alerts, models.SpaceWeatherAlert{
			Title:     item.Title,
			Severity:  classifySeverity(item.Title),
			Published: *item.PublishedParsed,
			Link:      item.Link,
		})
	}

	return alerts, nil
}

// classifySeverity assigns a severity label from event title keywords.
func classifySeverity(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "x-class") || strings.Contains(t, "extreme"):
		return "Extreme"
	case strings.Contains(t, "m-class") || strings.Contains(t, "major") || strings.Contains(t, "storm"):
		return "High"
	case strings.Contains(t, "c-class") || strings.Contains(t, "moderate"):
		return "Moderate"
	default:
		return "Low"
	}
}
