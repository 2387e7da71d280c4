package models

import (
	"encoding/json"
	"testing"
)

func TestNewLocationValidation(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		wantErr  bool
	}{
		{"valid high latitude", 69.6492, 18.9553, false},
		{"southern hemisphere", -54.8019, -68.3030, false},
		{"pole", 90, 0, false},
		{"latitude too high", 90.1, 0, true},
		{"latitude too low", -91, 0, true},
		{"longitude too high", 0, 180.5, true},
		{"longitude too low", 0, -181, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLocation("test", tc.lat, tc.lon)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewLocation(%.4f, %.4f) error = %v, wantErr %v", tc.lat, tc.lon, err, tc.wantErr)
			}
		})
	}
}

func TestNOAAKIndexResponseParsing(t *testing.T) {
	payload := `[
		{"time_tag": "2024-01-15T15:58:00", "kp_index": 4, "estimated_kp": 4.33},
		{"time_tag": "2024-01-15T15:59:00", "kp_index": 5, "estimated_kp": 5.33}
	]`

	var records []NOAAKIndexResponse
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if records[1].EstimatedKp != 5.33 {
		t.Errorf("estimated_kp = %.2f", records[1].EstimatedKp)
	}
}

func TestNOAAMagnetometerNullReading(t *testing.T) {
	payload := `[
		{"time_tag": "2024-01-15T15:58:00", "bt": 11.9},
		{"time_tag": "2024-01-15T15:59:00", "bt": null}
	]`

	var records []NOAAMagnetometerResponse
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if records[0].BtNT == nil || *records[0].BtNT != 11.9 {
		t.Errorf("first bt = %v", records[0].BtNT)
	}
	if records[1].BtNT != nil {
		t.Error("instrument gap should parse as nil")
	}
}

func TestOpenWeatherResponseParsing(t *testing.T) {
	payload := `{
		"main": {"temp": -3.2, "humidity": 80},
		"wind": {"speed": 2.5},
		"clouds": {"all": 25},
		"visibility": 10000,
		"weather": [{"id": 801, "main": "Clouds", "description": "few clouds"}],
		"sys": {"sunrise": 1705310700, "sunset": 1705324200},
		"dt": 1705334400
	}`

	var resp OpenWeatherResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.Main.Temp != -3.2 || resp.Clouds.All != 25 {
		t.Errorf("parsed %+v", resp)
	}
	if resp.Sys.Sunrise == 0 || resp.Sys.Sunset == 0 {
		t.Error("sunrise/sunset missing")
	}
}
