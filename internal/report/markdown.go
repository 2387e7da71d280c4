// Package report renders a dashboard summary into markdown and HTML files
// saved under a timestamped folder on local disk.
package report

import (
	"fmt"
	"strings"

	"photocast/internal/dashboard"
)

// BuildMarkdown renders the summary as a GFM markdown document. The console
// and the report show the same numbers; this is just a persistent surface.
func BuildMarkdown(s *dashboard.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Photography Report: %s\n\n", s.City)
	fmt.Fprintf(&b, "Generated at %s (lat %.4f, lon %.4f)\n\n",
		s.GeneratedAt.Format("2006-01-02 15:04 MST"), s.Location.Latitude, s.Location.Longitude)

	fmt.Fprintf(&b, "**Overall score: %.1f/10 (%s)** | Phase: %s\n\n",
		s.Score.Value, s.Score.Verdict, s.Window.PhaseNow)

	b.WriteString("## Current Conditions\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Weather | %.1f C, %s |\n", s.Weather.Temperature, s.Weather.Description)
	fmt.Fprintf(&b, "| Cloud cover | %.0f%% |\n", s.Weather.CloudCoverPct)
	fmt.Fprintf(&b, "| Visibility | %.1f km |\n", s.Weather.VisibilityKm)
	fmt.Fprintf(&b, "| Wind | %.1f km/h |\n", s.Weather.WindSpeedKmh)
	fmt.Fprintf(&b, "| Precipitation | %s |\n\n", s.Weather.Precipitation)

	b.WriteString("## Score Breakdown\n\n")
	b.WriteString("| Factor | Contribution |\n|---|---|\n")
	for _, key := range []string{"cloud_cover", "visibility", "golden_hour", "wind", "precipitation_cap"} {
		if v, ok := s.Score.Breakdown[key]; ok {
			fmt.Fprintf(&b, "| %s | %+.2f |\n", strings.ReplaceAll(key, "_", " "), v)
		}
	}
	b.WriteString("\n")

	b.WriteString("## Golden and Blue Hours (UTC)\n\n")
	fmt.Fprintf(&b, "- Morning blue: %s to %s\n",
		s.Window.MorningBlueStart.Format("15:04"), s.Window.MorningBlueEnd.Format("15:04"))
	fmt.Fprintf(&b, "- Morning golden: %s to %s\n",
		s.Window.MorningGoldenStart.Format("15:04"), s.Window.MorningGoldenEnd.Format("15:04"))
	fmt.Fprintf(&b, "- Evening golden: %s to %s\n",
		s.Window.EveningGoldenStart.Format("15:04"), s.Window.EveningGoldenEnd.Format("15:04"))
	fmt.Fprintf(&b, "- Evening blue: %s to %s\n\n",
		s.Window.EveningBlueStart.Format("15:04"), s.Window.EveningBlueEnd.Format("15:04"))

	b.WriteString("## Aurora Outlook\n\n")
	fmt.Fprintf(&b, "Visibility probability: **%d%%**\n\n", s.Aurora.ProbabilityPct)
	for _, factor := range s.Aurora.ContributingFactors {
		fmt.Fprintf(&b, "- %s\n", factor)
	}
	if s.Solar.MagneticFieldNT != nil {
		fmt.Fprintf(&b, "- interplanetary magnetic field %.1f nT\n", *s.Solar.MagneticFieldNT)
	}
	b.WriteString("\n")

	if len(s.Alerts) > 0 {
		b.WriteString("## Space Weather Alerts\n\n")
		for _, alert := range s.Alerts {
			fmt.Fprintf(&b, "- **%s** %s (%s)\n",
				alert.Severity, alert.Title, alert.Published.Format("Jan 2 15:04"))
		}
		b.WriteString("\n")
	}

	if s.Outlook != nil && len(s.Outlook.BestHours) > 0 {
		b.WriteString("## Best Hours (next 24h)\n\n")
		b.WriteString("| Time (UTC) | Score | Phase | Aurora |\n|---|---|---|---|\n")
		for _, h := range s.Outlook.BestHours {
			fmt.Fprintf(&b, "| %s | %.1f | %s | %d%% |\n",
				h.Time.Format("15:04"), h.Score.Value, h.Phase, h.AuroraPct)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Tips\n\n")
	for _, tip := range s.Tips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}
	b.WriteString("\n")

	if s.Narrative != "" {
		b.WriteString("## Field Notes\n\n")
		b.WriteString(s.Narrative)
		b.WriteString("\n")
	}

	return b.String()
}
