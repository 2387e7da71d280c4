package dashboard

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"photocast/internal/fetchers"
	"photocast/internal/models"
)

func buildDemoSummary(t *testing.T) *Summary {
	t.Helper()

	loc, err := models.NewLocation("Tromso", 69.6492, 18.9553)
	if err != nil {
		t.Fatalf("NewLocation failed: %v", err)
	}

	summary, err := Build(context.Background(), fetchers.NewDemoSource(), "Tromso", loc)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return summary
}

func TestBuildWithDemoSource(t *testing.T) {
	s := buildDemoSummary(t)

	if s.Weather == nil || s.Solar == nil || s.Window == nil || s.Outlook == nil {
		t.Fatal("summary missing sections")
	}
	if s.Score.Value < 0 || s.Score.Value > 10 {
		t.Errorf("score %.1f out of range", s.Score.Value)
	}
	if len(s.Tips) == 0 {
		t.Error("tips must never be empty")
	}
	if len(s.Outlook.Hours) != 24 {
		t.Errorf("outlook has %d hours, want 24", len(s.Outlook.Hours))
	}

	// The demo clock is a clear winter evening after sunset at high latitude
	// with Kp 5: aurora must be well in play and the verdict solid.
	if s.Aurora.ProbabilityPct <= 40 {
		t.Errorf("demo aurora probability = %d%%, want above the tip threshold", s.Aurora.ProbabilityPct)
	}
	if s.Score.Verdict != "Good" && s.Score.Verdict != "Excellent" {
		t.Errorf("demo verdict = %s, want Good or Excellent", s.Score.Verdict)
	}
	if !strings.Contains(s.Tips[0], "Aurora") {
		t.Errorf("first demo tip = %q, want the aurora tip", s.Tips[0])
	}
}

func TestBuildUsesSourceClock(t *testing.T) {
	s := buildDemoSummary(t)

	want := fetchers.NewDemoSource().Now()
	if !s.GeneratedAt.Equal(want) {
		t.Errorf("GeneratedAt = %v, want the demo clock %v", s.GeneratedAt, want)
	}
}

func TestBuildDeterministicOnDemoData(t *testing.T) {
	first := buildDemoSummary(t)
	second := buildDemoSummary(t)

	if first.Score.Value != second.Score.Value {
		t.Errorf("scores differ: %.1f vs %.1f", first.Score.Value, second.Score.Value)
	}
	if first.Aurora.ProbabilityPct != second.Aurora.ProbabilityPct {
		t.Error("aurora estimates differ")
	}
	if len(first.Tips) != len(second.Tips) {
		t.Error("tip lists differ")
	}
}

func TestRenderSections(t *testing.T) {
	s := buildDemoSummary(t)

	var buf bytes.Buffer
	Render(&buf, s)
	out := buf.String()

	for _, want := range []string{
		"PHOTOGRAPHY DASHBOARD: TROMSO",
		"Current Conditions",
		"Golden and Blue Hours",
		"Aurora Outlook",
		"24 Hour Outlook",
		"Tips",
		"Overall score",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}

	// Demo data carries an alert, so the section must show.
	if !strings.Contains(out, "Space Weather Alerts") {
		t.Error("alerts section missing")
	}
}
