package charts

import (
	"os"

	"photocast/internal/outlook"
)

// ChartGenerator handles creation of static chart images
type ChartGenerator struct {
	outputDir string
}

// NewChartGenerator creates a new chart generator
func NewChartGenerator(outputDir string) *ChartGenerator {
	return &ChartGenerator{
		outputDir: outputDir,
	}
}

// GenerateCharts creates all chart images for the report
func (cg *ChartGenerator) GenerateCharts(out *outlook.Outlook) ([]string, error) {
	if err := os.MkdirAll(cg.outputDir, 0o755); err != nil {
		return nil, err
	}

	var chartFiles []string

	if scoreChart, err := cg.generateScoreTrendChart(out); err == nil {
		chartFiles = append(chartFiles, scoreChart)
	}

	return chartFiles, nil
}
