package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"photocast/internal/outlook"
)

// generateScoreTrendChart creates a time series chart of the hourly
// photography score over the 24 hour outlook.
func (cg *ChartGenerator) generateScoreTrendChart(out *outlook.Outlook) (string, error) {
	filename := filepath.Join(cg.outputDir, "score_trend.png")

	var xValues []time.Time
	var yValues []float64
	for _, h := range out.Hours {
		xValues = append(xValues, h.Time)
		yValues = append(yValues, h.Score.Value)
	}

	if len(xValues) == 0 {
		return "", fmt.Errorf("no outlook hours to chart")
	}

	// Color-coded dots per verdict band
	var coloredSeries []chart.Series
	for i, score := range yValues {
		color := cg.getScoreZoneColor(score)
		coloredSeries = append(coloredSeries, chart.TimeSeries{
			Name: fmt.Sprintf("%.1f", score),
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 3,
				DotColor:    color,
				DotWidth:    5,
			},
			XValues: []time.Time{xValues[i]},
			YValues: []float64{score},
		})
	}

	mainSeries := chart.TimeSeries{
		Name: "Photography Score",
		Style: chart.Style{
			StrokeColor: drawing.Color{R: 51, G: 102, B: 204, A: 255},
			StrokeWidth: 2,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title: "Photography Score (24 Hours)",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   70,
				Right:  20,
				Bottom: 60,
			},
		},
		Height: 350,
		Width:  700,
		XAxis: chart.XAxis{
			Name: "Time (UTC)",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 9,
			},
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(time.Time); ok {
					return t.Format("15:04")
				}
				return ""
			},
			Ticks: cg.generateTimeTicks(xValues),
		},
		YAxis: chart.YAxis{
			Name: "Score",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 10.0,
			},
			Ticks: []chart.Tick{
				{Value: 0, Label: "0"},
				{Value: 2, Label: "2"},
				{Value: 4, Label: "4 (Moderate)"},
				{Value: 6, Label: "6 (Good)"},
				{Value: 8, Label: "8 (Excellent)"},
				{Value: 10, Label: "10"},
			},
		},
		Series: append([]chart.Series{mainSeries}, coloredSeries...),
	}

	// Threshold guide lines for the verdict bands
	minTime := xValues[0]
	maxTime := xValues[len(xValues)-1]

	graph.Series = append(graph.Series, chart.TimeSeries{
		Name: "Good Threshold",
		Style: chart.Style{
			StrokeColor:     drawing.Color{R: 0, G: 180, B: 0, A: 150},
			StrokeWidth:     1,
			StrokeDashArray: []float64{5, 5},
		},
		XValues: []time.Time{minTime, maxTime},
		YValues: []float64{6, 6},
	})

	graph.Series = append(graph.Series, chart.TimeSeries{
		Name: "Excellent Threshold",
		Style: chart.Style{
			StrokeColor:     drawing.Color{R: 0, G: 120, B: 255, A: 150},
			StrokeWidth:     1,
			StrokeDashArray: []float64{3, 3},
		},
		XValues: []time.Time{minTime, maxTime},
		YValues: []float64{8, 8},
	})

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create score chart file: %w", err)
	}
	defer f.Close()

	err = graph.Render(chart.PNG, f)
	if err != nil {
		return "", fmt.Errorf("failed to render score chart: %w", err)
	}

	return filename, nil
}

// generateTimeTicks creates time ticks for the X-axis, thinned to every
// third hour so labels stay readable.
func (cg *ChartGenerator) generateTimeTicks(xValues []time.Time) []chart.Tick {
	var ticks []chart.Tick

	for i, t := range xValues {
		if i%3 != 0 {
			continue
		}
		ticks = append(ticks, chart.Tick{
			Value: chart.TimeToFloat64(t),
			Label: t.Format("15:04"),
		})
	}

	return ticks
}

// getScoreZoneColor returns color based on the verdict band of a score.
func (cg *ChartGenerator) getScoreZoneColor(score float64) drawing.Color {
	switch {
	case score >= 8:
		return drawing.Color{R: 0, G: 120, B: 255, A: 255}
	case score >= 6:
		return drawing.Color{R: 0, G: 180, B: 0, A: 255}
	case score >= 4:
		return drawing.Color{R: 255, G: 180, B: 0, A: 255}
	default:
		return drawing.Color{R: 220, G: 0, B: 0, A: 255}
	}
}
