package dashboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"photocast/internal/goldenhour"
	"photocast/internal/scoring"
)

const timeLayout = "15:04 MST"

// Render writes the colored console view of a summary.
func Render(w io.Writer, s *Summary) {
	header := color.New(color.FgCyan, color.Bold)
	section := color.New(color.FgGreen, color.Bold)

	header.Fprintf(w, "\n=== PHOTOGRAPHY DASHBOARD: %s ===\n", strings.ToUpper(s.City))
	fmt.Fprintf(w, "Generated at %s (lat %.4f, lon %.4f)\n",
		s.GeneratedAt.Format("2006-01-02 15:04 MST"), s.Location.Latitude, s.Location.Longitude)

	fmt.Fprintf(w, "\nOverall score: %s  Phase: %s\n",
		renderScore(s.Score), s.Window.PhaseNow)

	section.Fprintln(w, "\n--- Current Conditions ---")
	fmt.Fprintf(w, "  %-14s %.1f C, %s\n", "Weather:", s.Weather.Temperature, s.Weather.Description)
	fmt.Fprintf(w, "  %-14s %.0f%%\n", "Cloud cover:", s.Weather.CloudCoverPct)
	fmt.Fprintf(w, "  %-14s %.1f km\n", "Visibility:", s.Weather.VisibilityKm)
	fmt.Fprintf(w, "  %-14s %.1f km/h\n", "Wind:", s.Weather.WindSpeedKmh)
	fmt.Fprintf(w, "  %-14s %s\n", "Precipitation:", s.Weather.Precipitation)

	section.Fprintln(w, "\n--- Golden and Blue Hours (UTC) ---")
	renderWindow(w, s.Window)

	section.Fprintln(w, "\n--- Aurora Outlook ---")
	fmt.Fprintf(w, "  Visibility probability: %s\n", renderAurora(s.Aurora.ProbabilityPct))
	for _, factor := range s.Aurora.ContributingFactors {
		fmt.Fprintf(w, "    - %s\n", factor)
	}
	if s.Solar.MagneticFieldNT != nil {
		fmt.Fprintf(w, "  Interplanetary magnetic field: %.1f nT\n", *s.Solar.MagneticFieldNT)
	}

	if len(s.Alerts) > 0 {
		section.Fprintln(w, "\n--- Space Weather Alerts ---")
		for _, alert := range s.Alerts {
			fmt.Fprintf(w, "  [%s] %s (%s)\n",
				renderSeverity(alert.Severity), alert.Title, alert.Published.Format("Jan 2 15:04"))
		}
	}

	section.Fprintln(w, "\n--- 24 Hour Outlook ---")
	renderOutlook(w, s)

	section.Fprintln(w, "\n--- Tips ---")
	for _, tip := range s.Tips {
		fmt.Fprintf(w, "  * %s\n", tip)
	}

	if s.Narrative != "" {
		section.Fprintln(w, "\n--- Field Notes ---")
		fmt.Fprintf(w, "%s\n", s.Narrative)
	}
}

func renderWindow(w io.Writer, window *goldenhour.Window) {
	rows := []struct {
		label      string
		start, end string
	}{
		{"Morning blue:", window.MorningBlueStart.Format(timeLayout), window.MorningBlueEnd.Format(timeLayout)},
		{"Morning golden:", window.MorningGoldenStart.Format(timeLayout), window.MorningGoldenEnd.Format(timeLayout)},
		{"Evening golden:", window.EveningGoldenStart.Format(timeLayout), window.EveningGoldenEnd.Format(timeLayout)},
		{"Evening blue:", window.EveningBlueStart.Format(timeLayout), window.EveningBlueEnd.Format(timeLayout)},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %-16s %s - %s\n", row.label, row.start, row.end)
	}
}

func renderOutlook(w io.Writer, s *Summary) {
	if s.Outlook == nil || len(s.Outlook.Hours) == 0 {
		fmt.Fprintln(w, "  no outlook available")
		return
	}

	if len(s.Outlook.BestHours) == 0 {
		fmt.Fprintln(w, "  No standout hours in the next 24h.")
	} else {
		fmt.Fprintln(w, "  Best hours to shoot:")
		for _, h := range s.Outlook.BestHours {
			fmt.Fprintf(w, "    %s  score %.1f (%s)", h.Time.Format("15:04"), h.Score.Value, h.Phase)
			if h.AuroraPct > 0 {
				fmt.Fprintf(w, ", aurora %d%%", h.AuroraPct)
			}
			fmt.Fprintln(w)
		}
	}
}

func renderScore(score scoring.Score) string {
	text := fmt.Sprintf("%.1f/10 (%s)", score.Value, score.Verdict)
	switch score.Verdict {
	case scoring.VerdictExcellent:
		return color.New(color.FgHiGreen, color.Bold).Sprint(text)
	case scoring.VerdictGood:
		return color.GreenString(text)
	case scoring.VerdictModerate:
		return color.YellowString(text)
	default:
		return color.RedString(text)
	}
}

func renderAurora(pct int) string {
	text := fmt.Sprintf("%d%%", pct)
	switch {
	case pct > 70:
		return color.New(color.FgHiMagenta, color.Bold).Sprint(text)
	case pct > 40:
		return color.MagentaString(text)
	case pct > 0:
		return color.CyanString(text)
	default:
		return text
	}
}

func renderSeverity(severity string) string {
	switch severity {
	case "Extreme":
		return color.New(color.FgHiRed, color.Bold).Sprint(severity)
	case "High":
		return color.RedString(severity)
	case "Moderate":
		return color.YellowString(severity)
	default:
		return severity
	}
}
