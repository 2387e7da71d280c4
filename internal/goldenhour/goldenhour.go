package goldenhour

import (
	"fmt"
	"time"

	"photocast/internal/models"
)

// Phase labels the lighting phase enclosing a given moment.
type Phase string

const (
	PhaseMorningBlue   Phase = "morning blue"
	PhaseMorningGolden Phase = "morning golden"
	PhaseDaytime       Phase = "daytime"
	PhaseEveningGolden Phase = "evening golden"
	PhaseEveningBlue   Phase = "evening blue"
	PhaseNight         Phase = "night"
)

// Window holds the computed golden and blue hour intervals for one solar day,
// plus whether the reference time falls inside one of them. All bounds are
// inclusive. Recomputed each run, never persisted.
type Window struct {
	Sunrise time.Time
	Sunset  time.Time

	MorningGoldenStart time.Time // sunrise
	MorningGoldenEnd   time.Time // sunrise + 60 min
	EveningGoldenStart time.Time // sunset - 60 min
	EveningGoldenEnd   time.Time // sunset
	MorningBlueStart   time.Time // sunrise - 30 min
	MorningBlueEnd     time.Time // sunrise
	EveningBlueStart   time.Time // sunset
	EveningBlueEnd     time.Time // sunset + 30 min

	IsGoldenNow bool
	IsBlueNow   bool
	PhaseNow    Phase
}

// Compute derives the golden and blue hour windows from the snapshot's
// sunrise/sunset and classifies the given time. The caller supplies same-day
// timestamps; no new solar day is derived here.
func Compute(solar *models.SolarSnapshot, now time.Time) (*Window, error) {
	if solar == nil {
		return nil, fmt.Errorf("%w: no solar snapshot", models.ErrInsufficientData)
	}
	if solar.SunriseUTC.IsZero() || solar.SunsetUTC.IsZero() {
		return nil, fmt.Errorf("%w: sunrise or sunset missing", models.ErrInsufficientData)
	}
	if !solar.SunsetUTC.After(solar.SunriseUTC) {
		return nil, fmt.Errorf("%w: sunset %s not after sunrise %s",
			models.ErrInvalidSolarData,
			solar.SunsetUTC.Format(time.RFC3339), solar.SunriseUTC.Format(time.RFC3339))
	}
	if solar.SunsetUTC.Sub(solar.SunriseUTC) >= 24*time.Hour {
		return nil, fmt.Errorf("%w: day length %s exceeds 24h",
			models.ErrInvalidSolarData, solar.SunsetUTC.Sub(solar.SunriseUTC))
	}

	sunrise := solar.SunriseUTC
	sunset := solar.SunsetUTC

	w := &Window{
		Sunrise:            sunrise,
		Sunset:             sunset,
		MorningGoldenStart: sunrise,
		MorningGoldenEnd:   sunrise.Add(time.Hour),
		EveningGoldenStart: sunset.Add(-time.Hour),
		EveningGoldenEnd:   sunset,
		MorningBlueStart:   sunrise.Add(-30 * time.Minute),
		MorningBlueEnd:     sunrise,
		EveningBlueStart:   sunset,
		EveningBlueEnd:     sunset.Add(30 * time.Minute),
	}

	w.IsGoldenNow = within(now, w.MorningGoldenStart, w.MorningGoldenEnd) ||
		within(now, w.EveningGoldenStart, w.EveningGoldenEnd)
	w.IsBlueNow = within(now, w.MorningBlueStart, w.MorningBlueEnd) ||
		within(now, w.EveningBlueStart, w.EveningBlueEnd)
	w.PhaseNow = w.PhaseAt(now)

	return w, nil
}

// PhaseAt picks the enclosing window label for a moment; blue wins over
// golden at the shared sunrise/sunset boundary.
func (w *Window) PhaseAt(now time.Time) Phase {
	switch {
	case within(now, w.MorningBlueStart, w.MorningBlueEnd):
		return PhaseMorningBlue
	case within(now, w.EveningBlueStart, w.EveningBlueEnd):
		return PhaseEveningBlue
	case within(now, w.MorningGoldenStart, w.MorningGoldenEnd):
		return PhaseMorningGolden
	case within(now, w.EveningGoldenStart, w.EveningGoldenEnd):
		return PhaseEveningGolden
	case within(now, w.MorningBlueStart, w.EveningBlueEnd):
		return PhaseDaytime
	default:
		return PhaseNight
	}
}

// NextGoldenStart returns the start of the next golden window at or after now.
// When both windows of the given solar day have passed, the next morning
// window is assumed one day later.
func (w *Window) NextGoldenStart(now time.Time) time.Time {
	if now.Before(w.MorningGoldenStart) {
		return w.MorningGoldenStart
	}
	if now.Before(w.EveningGoldenStart) {
		return w.EveningGoldenStart
	}
	return w.MorningGoldenStart.Add(24 * time.Hour)
}

// IsDaylight reports whether t falls between sunrise and sunset, bounds
// inclusive.
func (w *Window) IsDaylight(t time.Time) bool {
	return within(t, w.Sunrise, w.Sunset)
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
