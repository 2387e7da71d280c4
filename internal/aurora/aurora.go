package aurora

import (
	"fmt"
	"math"
	"time"

	"photocast/internal/goldenhour"
	"photocast/internal/models"
)

// Estimate is an aurora visibility estimate with the factors that produced it.
// The factor list lets a renderer distinguish "no activity" from "no data"
// even though both read 0%.
type Estimate struct {
	ProbabilityPct      int
	ContributingFactors []string
}

// Kp anchor points for the base probability curve. Piecewise linear and
// monotonic; Kp 5 maps near 50% and Kp 9 near 95%.
var kpAnchors = []struct {
	kp, pct float64
}{
	{0, 0},
	{3, 30},
	{5, 55},
	{7, 85},
	{9, 95},
}

// Latitude scaling bounds: visibility fades to zero below 45 deg and reaches
// full weight at 60 deg.
const (
	latFadeFloor = 45.0
	latFullCeil  = 60.0
)

// EstimateVisibility computes an aurora visibility probability from the geomagnetic
// index, the location's latitude, the current cloud cover and darkness. The
// window supplies sunrise/sunset for the daylight gate. A heuristic weighted
// product, not a physical simulation.
func EstimateVisibility(solar *models.SolarSnapshot, loc models.Location, cloudCoverPct float64, window *goldenhour.Window, now time.Time) Estimate {
	if solar == nil || solar.GeomagneticIndex == nil {
		return Estimate{
			ProbabilityPct:      0,
			ContributingFactors: []string{"no geomagnetic data available"},
		}
	}

	kp := clamp(*solar.GeomagneticIndex, 0, 9)
	base := baseProbability(kp)
	latFactor := latitudeFactor(loc.Latitude)
	cloudFactor := clamp((100-cloudCoverPct)/100, 0, 1)

	factors := []string{
		fmt.Sprintf("Kp %.1f base probability %.1f%%", kp, base),
		fmt.Sprintf("latitude %.1f deg factor %.2f", loc.Latitude, latFactor),
		fmt.Sprintf("cloud cover %.0f%% factor %.2f", cloudCoverPct, cloudFactor),
	}

	probability := int(math.Round(base * latFactor * cloudFactor))
	if probability < 0 {
		probability = 0
	}
	if probability > 100 {
		probability = 100
	}

	// Aurora is never visible in daylight, whatever the other factors say.
	if window != nil && window.IsDaylight(now) {
		probability = 0
		factors = append(factors, "daylight gate: probability forced to 0")
	}

	return Estimate{
		ProbabilityPct:      probability,
		ContributingFactors: factors,
	}
}

// baseProbability interpolates the Kp anchor curve.
func baseProbability(kp float64) float64 {
	if kp <= kpAnchors[0].kp {
		return kpAnchors[0].pct
	}
	for i := 1; i < len(kpAnchors); i++ {
		if kp <= kpAnchors[i].kp {
			lo, hi := kpAnchors[i-1], kpAnchors[i]
			t := (kp - lo.kp) / (hi.kp - lo.kp)
			return lo.pct + t*(hi.pct-lo.pct)
		}
	}
	return kpAnchors[len(kpAnchors)-1].pct
}

// latitudeFactor scales visibility by |latitude|: 0 below 45 deg, linear up
// to 1 at 60 deg, 1 above.
func latitudeFactor(latitude float64) float64 {
	absLat := math.Abs(latitude)
	switch {
	case absLat < latFadeFloor:
		return 0
	case absLat >= latFullCeil:
		return 1
	default:
		return (absLat - latFadeFloor) / (latFullCeil - latFadeFloor)
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
