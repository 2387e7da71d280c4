package tips

import (
	"fmt"
	"time"

	"photocast/internal/aurora"
	"photocast/internal/goldenhour"
	"photocast/internal/models"
	"photocast/internal/scoring"
)

// Thresholds for the rule checks. Wind matches the scorer's calm threshold so
// the tip fires exactly when the score starts losing wind credit.
const (
	auroraTipPct = 40
	highWindKmh  = 20.0
)

// Generate produces an ordered list of recommendations, most actionable
// first. Rules are independent; several may fire. The list is never empty.
func Generate(weather *models.WeatherSnapshot, window *goldenhour.Window, auroraEst aurora.Estimate, score scoring.Score, now time.Time) []string {
	var out []string

	if auroraEst.ProbabilityPct > auroraTipPct {
		out = append(out, fmt.Sprintf(
			"Aurora probability %d%%: pack a wide-angle lens and a tripod, shoot 15-30s exposures at high ISO",
			auroraEst.ProbabilityPct))
	}

	if window != nil && (window.IsGoldenNow || window.IsBlueNow) {
		if window.IsGoldenNow {
			out = append(out, "Golden hour light: meter for the highlights and lean into warm white balance")
		} else {
			out = append(out, "Blue hour light: bracket exposures and set white balance toward the cool end")
		}
	}

	if weather.WindSpeedKmh > highWindKmh {
		out = append(out, fmt.Sprintf(
			"Wind at %.0f km/h: weight the tripod or shoot from shelter for long exposures",
			weather.WindSpeedKmh))
	}

	if weather.Precipitation != models.PrecipitationNone {
		out = append(out, fmt.Sprintf(
			"Active %s: bring rain covers for the gear, or work covered and indoor angles",
			weather.Precipitation))
	}

	// Fallback only when nothing above fired and conditions are genuinely poor.
	if len(out) == 0 && score.Verdict == scoring.VerdictPoor && window != nil {
		next := window.NextGoldenStart(now)
		out = append(out, fmt.Sprintf(
			"Conditions are poor right now; check again at the next golden hour around %s UTC",
			next.Format("15:04")))
	}

	if len(out) == 0 {
		out = append(out, "Conditions are average; use your judgment and scout the light")
	}

	return out
}
