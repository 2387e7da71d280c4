package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"photocast/internal/logger"
	"photocast/internal/models"
)

// FetchSolar builds a SolarSnapshot: sunrise/sunset from the weather
// provider, geomagnetic index and magnetic field from NOAA SWPC. The three
// calls run concurrently. Sunrise/sunset are required; the space weather
// readings degrade to "no data" when their feeds are unavailable.
func (s *APISource) FetchSolar(ctx context.Context, loc models.Location) (*models.SolarSnapshot, error) {
	weatherChan := make(chan *models.OpenWeatherResponse, 1)
	kpChan := make(chan *float64, 1)
	magChan := make(chan *float64, 1)
	errChan := make(chan error, 1)

	go func() {
		raw, err := s.fetchOpenWeather(ctx, loc)
		if err != nil {
			errChan <- fmt.Errorf("sunrise/sunset fetch failed: %w", err)
			return
		}
		weatherChan <- raw
	}()

	go func() {
		kp, err := s.fetchKIndex(ctx)
		if err != nil {
			logger.Warn("geomagnetic index unavailable", map[string]interface{}{"error": err.Error()})
			kpChan <- nil
			return
		}
		kpChan <- kp
	}()

	go func() {
		bt, err := s.fetchMagneticField(ctx)
		if err != nil {
			logger.Warn("magnetic field reading unavailable", map[string]interface{}{"error": err.Error()})
			magChan <- nil
			return
		}
		magChan <- bt
	}()

	var raw *models.OpenWeatherResponse
	select {
	case raw = <-weatherChan:
	case err := <-errChan:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	snapshot := &models.SolarSnapshot{
		SunriseUTC: time.Unix(raw.Sys.Sunrise, 0).UTC(),
		SunsetUTC:  time.Unix(raw.Sys.Sunset, 0).UTC(),
		Timestamp:  time.Now().UTC(),
	}

	for i := 0; i < 2; i++ {
		select {
		case kp := <-kpChan:
			snapshot.GeomagneticIndex = kp
		case bt := <-magChan:
			snapshot.MagneticFieldNT = bt
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	// SolarRadiation has no live feed wired; it stays nil so downstream code
	// reports "no data" instead of a fake zero reading.
	return snapshot, nil
}

// fetchKIndex fetches the planetary K-index feed and returns the most recent
// reading.
func (s *APISource) fetchKIndex(ctx context.Context) (*float64, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(s.cfg.NOAAKIndexURL)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch NOAA K-index: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("NOAA K-index API returned status %d", resp.StatusCode())
	}

	var records []models.NOAAKIndexResponse
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("failed to parse NOAA K-index response: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("NOAA K-index response has no data")
	}

	latest := records[len(records)-1]
	kp := latest.KpIndex
	if latest.EstimatedKp > 0 {
		kp = latest.EstimatedKp
	}
	if kp < 0 || kp > 9 {
		return nil, fmt.Errorf("K-index %.2f outside the 0-9 scale", kp)
	}

	return &kp, nil
}

// fetchMagneticField fetches the real-time solar wind magnetometer feed and
// returns the latest total-field reading, skipping instrument gaps.
func (s *APISource) fetchMagneticField(ctx context.Context) (*float64, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(s.cfg.NOAAMagURL)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch magnetometer data: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("magnetometer API returned status %d", resp.StatusCode())
	}

	var records []models.NOAAMagnetometerResponse
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("failed to parse magnetometer response: %w", err)
	}

	for i := len(records) - 1; i >= 0; i-- {
		if records[i].BtNT != nil {
			return records[i].BtNT, nil
		}
	}

	return nil, fmt.Errorf("no valid magnetometer reading found")
}
