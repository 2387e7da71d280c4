package models

import (
	"errors"
	"fmt"
	"time"
)

// Core data errors. Callers distinguish "could not compute" from a computed
// zero with errors.Is against these sentinels.
var (
	// ErrInvalidSolarData indicates malformed solar timestamps, e.g. sunset
	// before sunrise or a day longer than 24 hours.
	ErrInvalidSolarData = errors.New("invalid solar data")

	// ErrInsufficientData indicates a required field is missing and no safe
	// default exists.
	ErrInsufficientData = errors.New("insufficient data")
)

// Precipitation classifies the active precipitation type.
type Precipitation string

const (
	PrecipitationNone  Precipitation = "none"
	PrecipitationRain  Precipitation = "rain"
	PrecipitationSnow  Precipitation = "snow"
	PrecipitationOther Precipitation = "other"
)

// Location is an immutable shooting location.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewLocation validates coordinates and returns a Location.
func NewLocation(name string, latitude, longitude float64) (Location, error) {
	if latitude < -90 || latitude > 90 {
		return Location{}, fmt.Errorf("latitude %.4f out of range [-90,90]", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return Location{}, fmt.Errorf("longitude %.4f out of range [-180,180]", longitude)
	}
	return Location{Name: name, Latitude: latitude, Longitude: longitude}, nil
}

// WeatherSnapshot holds current weather conditions, created once per run from
// the data source and read-only thereafter.
type WeatherSnapshot struct {
	Temperature   float64       `json:"temperature_c"`
	CloudCoverPct float64       `json:"cloud_cover_pct"`
	VisibilityKm  float64       `json:"visibility_km"`
	WindSpeedKmh  float64       `json:"wind_speed_kmh"`
	Precipitation Precipitation `json:"precipitation"`
	Description   string        `json:"description,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

// SolarSnapshot holds sunrise/sunset and space weather readings. Optional
// fields are nil when the source cannot supply them; nil means "no data" and
// must never be collapsed to a zero reading.
type SolarSnapshot struct {
	SunriseUTC       time.Time `json:"sunrise_utc"`
	SunsetUTC        time.Time `json:"sunset_utc"`
	GeomagneticIndex *float64  `json:"geomagnetic_index,omitempty"` // Kp scale, 0-9
	MagneticFieldNT  *float64  `json:"magnetic_field_nt,omitempty"`
	SolarRadiation   *float64  `json:"solar_radiation,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// SpaceWeatherAlert is a notable event from the SWPC alerts feed.
type SpaceWeatherAlert struct {
	Title     string    `json:"title"`
	Severity  string    `json:"severity"` // Low/Moderate/High/Extreme
	Published time.Time `json:"published"`
	Link      string    `json:"link,omitempty"`
}
