package scoring

import (
	"math"

	"photocast/internal/aurora"
	"photocast/internal/goldenhour"
	"photocast/internal/models"
)

// Verdict is the categorical label derived from the numeric score.
type Verdict string

const (
	VerdictExcellent Verdict = "Excellent"
	VerdictGood      Verdict = "Good"
	VerdictModerate  Verdict = "Moderate"
	VerdictPoor      Verdict = "Poor"
)

// Component weights. The maxima sum to 10.0.
const (
	cloudWeight      = 4.5
	visibilityWeight = 2.5
	goldenBonus      = 1.5
	windWeight       = 1.5

	// cloudClearPct and below earns the full cloud allocation; cloudOvercastPct
	// and above earns none.
	cloudClearPct    = 20.0
	cloudOvercastPct = 80.0

	// visibilityCeilingKm and beyond earns full visibility credit.
	visibilityCeilingKm = 10.0

	// Wind up to calmWindKmh keeps the full allocation, fading to zero at
	// strongWindKmh.
	calmWindKmh   = 20.0
	strongWindKmh = 50.0

	// Active precipitation caps the whole score, it is not a mere penalty.
	precipitationCeiling = 5.0

	// Above this aurora probability the cloud term switches to the sharper
	// anti-cloud curve.
	auroraCloudOverridePct = 40
)

// Score is the composite shoot-quality result.
type Score struct {
	Value     float64            // 0-10, one decimal place
	Verdict   Verdict
	Breakdown map[string]float64 // every factor listed, zero contributions included
}

// ScoreConditions combines weather, golden-hour state and the aurora estimate
// into a single 0-10 score. Pure function of its inputs.
func ScoreConditions(weather *models.WeatherSnapshot, window *goldenhour.Window, auroraEst aurora.Estimate) Score {
	breakdown := map[string]float64{
		"cloud_cover":       cloudContribution(weather.CloudCoverPct, auroraEst.ProbabilityPct),
		"visibility":        visibilityContribution(weather.VisibilityKm),
		"golden_hour":       goldenContribution(window),
		"wind":              windContribution(weather.WindSpeedKmh),
		"precipitation_cap": 0,
	}

	total := breakdown["cloud_cover"] + breakdown["visibility"] + breakdown["golden_hour"] + breakdown["wind"]

	// A hard ceiling: rain or snow limits outdoor shooting no matter how good
	// the light is.
	if weather.Precipitation != models.PrecipitationNone && total > precipitationCeiling {
		breakdown["precipitation_cap"] = precipitationCeiling - total
		total = precipitationCeiling
	}

	if total < 0 {
		total = 0
	}
	if total > 10 {
		total = 10
	}
	value := math.Round(total*10) / 10

	return Score{
		Value:     value,
		Verdict:   verdictFor(value),
		Breakdown: breakdown,
	}
}

// cloudContribution rewards clear skies. When aurora probability is high the
// linear ramp is replaced with a quadratic one: aurora hunting and golden-hour
// shooting want opposite skies, so moderate cloud hurts more.
func cloudContribution(cloudPct float64, auroraPct int) float64 {
	cloudPct = clamp(cloudPct, 0, 100)

	if auroraPct > auroraCloudOverridePct {
		open := (100 - cloudPct) / 100
		return cloudWeight * open * open
	}

	switch {
	case cloudPct < cloudClearPct:
		return cloudWeight
	case cloudPct > cloudOvercastPct:
		return 0
	default:
		return cloudWeight * (cloudOvercastPct - cloudPct) / (cloudOvercastPct - cloudClearPct)
	}
}

func visibilityContribution(visibilityKm float64) float64 {
	if visibilityKm < 0 {
		visibilityKm = 0
	}
	if visibilityKm > visibilityCeilingKm {
		visibilityKm = visibilityCeilingKm
	}
	return visibilityWeight * visibilityKm / visibilityCeilingKm
}

func goldenContribution(window *goldenhour.Window) float64 {
	if window != nil && (window.IsGoldenNow || window.IsBlueNow) {
		return goldenBonus
	}
	return 0
}

// windContribution keeps the full allocation below the calm threshold; strong
// wind degrades tripod work, fading credit to zero.
func windContribution(windKmh float64) float64 {
	switch {
	case windKmh <= calmWindKmh:
		return windWeight
	case windKmh >= strongWindKmh:
		return 0
	default:
		return windWeight * (strongWindKmh - windKmh) / (strongWindKmh - calmWindKmh)
	}
}

func verdictFor(value float64) Verdict {
	switch {
	case value >= 8:
		return VerdictExcellent
	case value >= 6:
		return VerdictGood
	case value >= 4:
		return VerdictModerate
	default:
		return VerdictPoor
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
