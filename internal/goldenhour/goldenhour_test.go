package goldenhour

import (
	"errors"
	"testing"
	"time"

	"photocast/internal/models"
)

func testSolar(sunrise, sunset time.Time) *models.SolarSnapshot {
	return &models.SolarSnapshot{
		SunriseUTC: sunrise,
		SunsetUTC:  sunset,
		Timestamp:  sunrise,
	}
}

func TestComputeWindowBounds(t *testing.T) {
	sunrise := time.Date(2024, 6, 1, 4, 30, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC)

	w, err := Compute(testSolar(sunrise, sunset), sunrise)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if !w.MorningGoldenStart.Equal(sunrise) {
		t.Errorf("morning golden start = %v, want sunrise %v", w.MorningGoldenStart, sunrise)
	}
	if !w.MorningGoldenEnd.Equal(sunrise.Add(time.Hour)) {
		t.Errorf("morning golden end = %v, want sunrise+1h", w.MorningGoldenEnd)
	}
	if !w.EveningGoldenStart.Equal(sunset.Add(-time.Hour)) {
		t.Errorf("evening golden start = %v, want sunset-1h", w.EveningGoldenStart)
	}
	if !w.EveningGoldenEnd.Equal(sunset) {
		t.Errorf("evening golden end = %v, want sunset", w.EveningGoldenEnd)
	}
	if !w.MorningBlueStart.Equal(sunrise.Add(-30 * time.Minute)) {
		t.Errorf("morning blue start = %v, want sunrise-30m", w.MorningBlueStart)
	}
	if !w.EveningBlueEnd.Equal(sunset.Add(30 * time.Minute)) {
		t.Errorf("evening blue end = %v, want sunset+30m", w.EveningBlueEnd)
	}
}

func TestPhaseClassification(t *testing.T) {
	sunrise := time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	w, err := Compute(testSolar(sunrise, sunset), sunrise)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	tests := []struct {
		name string
		at   time.Time
		want Phase
	}{
		{"mid morning golden", sunrise.Add(30 * time.Minute), PhaseMorningGolden},
		{"20min after sunrise", sunrise.Add(20 * time.Minute), PhaseMorningGolden},
		{"two hours after sunrise", sunrise.Add(2 * time.Hour), PhaseDaytime},
		{"mid evening golden", sunset.Add(-30 * time.Minute), PhaseEveningGolden},
		{"before morning blue", sunrise.Add(-45 * time.Minute), PhaseNight},
		{"mid morning blue", sunrise.Add(-15 * time.Minute), PhaseMorningBlue},
		{"mid evening blue", sunset.Add(15 * time.Minute), PhaseEveningBlue},
		{"late night", sunset.Add(3 * time.Hour), PhaseNight},
		// Sunrise belongs to both morning blue and morning golden; blue wins.
		{"exact sunrise", sunrise, PhaseMorningBlue},
		{"exact sunset", sunset, PhaseEveningBlue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.PhaseAt(tc.at); got != tc.want {
				t.Errorf("PhaseAt(%v) = %q, want %q", tc.at, got, tc.want)
			}
		})
	}
}

func TestGoldenAndBlueFlags(t *testing.T) {
	sunrise := time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

	w, err := Compute(testSolar(sunrise, sunset), sunrise.Add(20*time.Minute))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if !w.IsGoldenNow {
		t.Error("expected IsGoldenNow 20 minutes after sunrise")
	}
	if w.IsBlueNow {
		t.Error("did not expect IsBlueNow 20 minutes after sunrise")
	}

	w, err = Compute(testSolar(sunrise, sunset), sunset.Add(10*time.Minute))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if w.IsGoldenNow {
		t.Error("did not expect IsGoldenNow after sunset")
	}
	if !w.IsBlueNow {
		t.Error("expected IsBlueNow 10 minutes after sunset")
	}
}

func TestNextGoldenStart(t *testing.T) {
	sunrise := time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	w, err := Compute(testSolar(sunrise, sunset), sunrise)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	before := sunrise.Add(-2 * time.Hour)
	if got := w.NextGoldenStart(before); !got.Equal(sunrise) {
		t.Errorf("NextGoldenStart before sunrise = %v, want %v", got, sunrise)
	}

	midday := sunrise.Add(5 * time.Hour)
	if got := w.NextGoldenStart(midday); !got.Equal(sunset.Add(-time.Hour)) {
		t.Errorf("NextGoldenStart at midday = %v, want evening start", got)
	}

	night := sunset.Add(2 * time.Hour)
	if got := w.NextGoldenStart(night); !got.Equal(sunrise.Add(24 * time.Hour)) {
		t.Errorf("NextGoldenStart at night = %v, want next morning", got)
	}
}

func TestIsDaylight(t *testing.T) {
	sunrise := time.Date(2024, 1, 15, 9, 45, 0, 0, time.UTC)
	sunset := time.Date(2024, 1, 15, 13, 30, 0, 0, time.UTC)
	w, err := Compute(testSolar(sunrise, sunset), sunrise)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if !w.IsDaylight(sunrise.Add(time.Hour)) {
		t.Error("expected daylight one hour after sunrise")
	}
	if w.IsDaylight(sunset.Add(time.Minute)) {
		t.Error("did not expect daylight after sunset")
	}
	if !w.IsDaylight(sunset) {
		t.Error("sunset itself counts as daylight")
	}
}

func TestComputeErrors(t *testing.T) {
	sunrise := time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)

	if _, err := Compute(nil, sunrise); !errors.Is(err, models.ErrInsufficientData) {
		t.Errorf("nil snapshot: got %v, want ErrInsufficientData", err)
	}

	if _, err := Compute(testSolar(time.Time{}, sunrise), sunrise); !errors.Is(err, models.ErrInsufficientData) {
		t.Errorf("zero sunrise: got %v, want ErrInsufficientData", err)
	}

	if _, err := Compute(testSolar(sunrise, sunrise.Add(-time.Hour)), sunrise); !errors.Is(err, models.ErrInvalidSolarData) {
		t.Errorf("sunset before sunrise: got %v, want ErrInvalidSolarData", err)
	}

	if _, err := Compute(testSolar(sunrise, sunrise), sunrise); !errors.Is(err, models.ErrInvalidSolarData) {
		t.Errorf("sunset equal to sunrise: got %v, want ErrInvalidSolarData", err)
	}

	if _, err := Compute(testSolar(sunrise, sunrise.Add(25*time.Hour)), sunrise); !errors.Is(err, models.ErrInvalidSolarData) {
		t.Errorf("day over 24h: got %v, want ErrInvalidSolarData", err)
	}
}
