package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"photocast/internal/charts"
	"photocast/internal/config"
	"photocast/internal/dashboard"
	"photocast/internal/fetchers"
	"photocast/internal/llm"
	"photocast/internal/logger"
	"photocast/internal/models"
	"photocast/internal/report"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// .env is optional; environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	logger.Info("Starting photography dashboard", map[string]interface{}{
		"city": cfg.City,
		"demo": cfg.DemoMode,
	})

	src, loc, err := buildDataSource(ctx, cfg)
	if err != nil {
		return err
	}

	summary, err := dashboard.Build(ctx, src, cfg.City, loc)
	if err != nil {
		return err
	}

	// Narrative is optional and never blocks the console output.
	if cfg.OpenAIAPIKey != "" {
		client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		narrative, err := client.GenerateNarrative(ctx, summary)
		if err != nil {
			logger.Warn("Narrative generation failed", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			summary.Narrative = narrative
		}
	}

	dashboard.Render(os.Stdout, summary)

	if cfg.SaveReport {
		writer := report.NewWriter(cfg.ReportsDir)

		var chartFiles []string
		if cfg.RenderChart {
			generator := charts.NewChartGenerator(writer.FolderPath(summary.GeneratedAt))
			chartFiles, err = generator.GenerateCharts(summary.Outlook)
			if err != nil {
				logger.Warn("Chart generation failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		files, err := writer.Write(summary, chartFiles)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		for _, f := range files {
			fmt.Printf("Saved %s\n", f)
		}
	}

	return nil
}

// buildDataSource picks the demo or live source and resolves the location.
// Without an OpenWeather key the live APIs cannot serve, so demo data is
// used and a warning logged.
func buildDataSource(ctx context.Context, cfg *config.Config) (fetchers.DataSource, models.Location, error) {
	if cfg.DemoMode || cfg.OpenWeatherAPIKey == "" {
		if !cfg.DemoMode {
			logger.Warn("OPENWEATHER_API_KEY not set, using demo data")
		}
		loc, err := models.NewLocation(cfg.City, cfg.Latitude, cfg.Longitude)
		if err != nil {
			return nil, models.Location{}, err
		}
		return fetchers.NewDemoSource(), loc, nil
	}

	src := fetchers.NewAPISource(fetchers.APIConfig{
		APIKey:        cfg.OpenWeatherAPIKey,
		WeatherURL:    cfg.WeatherURL,
		GeocodingURL:  cfg.GeocodingURL,
		NOAAKIndexURL: cfg.NOAAKIndexURL,
		NOAAMagURL:    cfg.NOAAMagURL,
		AlertsRSSURL:  cfg.AlertsRSSURL,
	})

	if cfg.GeocodeCity {
		loc, err := src.ResolveCity(ctx, cfg.City)
		if err != nil {
			return nil, models.Location{}, fmt.Errorf("failed to geocode city %q: %w", cfg.City, err)
		}
		logger.Info("Resolved city coordinates", map[string]interface{}{
			"city": cfg.City,
			"lat":  loc.Latitude,
			"lon":  loc.Longitude,
		})
		return src, loc, nil
	}

	loc, err := models.NewLocation(cfg.City, cfg.Latitude, cfg.Longitude)
	if err != nil {
		return nil, models.Location{}, err
	}
	return src, loc, nil
}
