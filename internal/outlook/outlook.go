// Package outlook synthesizes a 24 hour photography outlook from the
// current conditions. The OpenWeather free tier only exposes current
// weather, so the hourly series is derived deterministically from the
// latest snapshot with diurnal cycles, then every hour is scored through
// the same pipeline the live dashboard uses.
package outlook

import (
	"time"

	"photocast/internal/aurora"
	"photocast/internal/goldenhour"
	"photocast/internal/models"
	"photocast/internal/scoring"
)

// goodScoreFloor is the minimum score for an hour to count as a best hour.
const goodScoreFloor = 6.0

// Hour is one entry of the 24 hour outlook.
type Hour struct {
	Time      time.Time
	Weather   models.WeatherSnapshot
	Score     scoring.Score
	AuroraPct int
	Phase     goldenhour.Phase
}

// Outlook is the scored hourly series plus the hours worth planning around.
type Outlook struct {
	Hours     []Hour
	BestHours []Hour
}

// Build derives 24 hourly snapshots from the current weather, scores each
// one, and collects the best hours. The golden hour window and location are
// held fixed over the horizon; sunrise and sunset drift little over a day.
func Build(weather *models.WeatherSnapshot, solar *models.SolarSnapshot, loc models.Location, window *goldenhour.Window, now time.Time) *Outlook {
	out := &Outlook{Hours: make([]Hour, 0, 24)}

	for offset := 0; offset < 24; offset++ {
		at := now.Add(time.Duration(offset) * time.Hour)
		hw := hourlyWeather(weather, at)

		est := aurora.EstimateVisibility(solar, loc, hw.CloudCoverPct, window, at)
		score := scoring.ScoreConditions(&hw, window, est)

		entry := Hour{
			Time:      at,
			Weather:   hw,
			Score:     score,
			AuroraPct: est.ProbabilityPct,
			Phase:     window.PhaseAt(at),
		}
		out.Hours = append(out.Hours, entry)

		if score.Value >= goodScoreFloor {
			out.BestHours = append(out.BestHours, entry)
		}
	}

	return out
}

// hourlyWeather projects the current snapshot onto a future hour using
// fixed diurnal cycles. No randomness: the same input always produces the
// same outlook.
func hourlyWeather(base *models.WeatherSnapshot, at time.Time) models.WeatherSnapshot {
	hour := at.UTC().Hour()

	var tempShift float64
	switch {
	case hour >= 6 && hour <= 8:
		tempShift = -2
	case hour >= 9 && hour <= 11:
		tempShift = -1
	case hour >= 12 && hour <= 16:
		tempShift = 0
	case hour >= 17 && hour <= 19:
		tempShift = -1
	case hour >= 20 && hour <= 22:
		tempShift = -2
	default:
		tempShift = -3
	}

	var windShift float64
	if hour >= 12 && hour <= 16 {
		windShift = 3.6
	}

	var cloudShift float64
	switch {
	case hour >= 6 && hour <= 8:
		cloudShift = -10
	case hour >= 12 && hour <= 16:
		cloudShift = 5
	}

	return models.WeatherSnapshot{
		Temperature:   clamp(base.Temperature+tempShift, -60, 60),
		CloudCoverPct: clamp(base.CloudCoverPct+cloudShift, 0, 100),
		VisibilityKm:  base.VisibilityKm,
		WindSpeedKmh:  max(base.WindSpeedKmh+windShift, 0),
		Precipitation: base.Precipitation,
		Description:   base.Description,
		Timestamp:     at,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
