package fetchers

import (
	"context"
	"time"

	"photocast/internal/models"
)

// DemoSource serves fixed data so the dashboard renders a stable, realistic
// report without network access or API keys: a clear winter evening in
// Tromso with elevated geomagnetic activity. It is an alternate DataSource,
// not a branch inside the computation pipeline.
type DemoSource struct{}

// NewDemoSource creates the static demo data source.
func NewDemoSource() *DemoSource {
	return &DemoSource{}
}

// demoDay is the fixed solar day all demo data refers to.
var demoDay = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

// Now returns the fixed demo clock: well after sunset, aurora territory.
func (d *DemoSource) Now() time.Time {
	return demoDay.Add(16 * time.Hour)
}

// FetchWeather returns the static demo weather snapshot.
func (d *DemoSource) FetchWeather(ctx context.Context, loc models.Location) (*models.WeatherSnapshot, error) {
	return &models.WeatherSnapshot{
		Temperature:   -8.5,
		CloudCoverPct: 15,
		VisibilityKm:  20,
		WindSpeedKmh:  8,
		Precipitation: models.PrecipitationNone,
		Description:   "clear sky",
		Timestamp:     d.Now(),
	}, nil
}

// FetchSolar returns the static demo solar snapshot. All optional readings
// are present so the full report surface renders.
func (d *DemoSource) FetchSolar(ctx context.Context, loc models.Location) (*models.SolarSnapshot, error) {
	kp := 5.0
	bt := 12.3
	radiation := 141.0

	return &models.SolarSnapshot{
		SunriseUTC:       demoDay.Add(9*time.Hour + 45*time.Minute),
		SunsetUTC:        demoDay.Add(13*time.Hour + 30*time.Minute),
		GeomagneticIndex: &kp,
		MagneticFieldNT:  &bt,
		SolarRadiation:   &radiation,
		Timestamp:        d.Now(),
	}, nil
}

// FetchAlerts returns a static recent alert.
func (d *DemoSource) FetchAlerts(ctx context.Context) ([]models.SpaceWeatherAlert, error) {
	return []models.SpaceWeatherAlert{
		{
			Title:     "M-class flare followed by minor geomagnetic storm watch",
			Severity:  "High",
			Published: demoDay.Add(6 * time.Hour),
		},
	}, nil
}
