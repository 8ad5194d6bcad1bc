package analysis

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

type stubProvider struct {
	profile models.UserProfile
	err     error
}

func (s stubProvider) Profile(context.Context) (models.UserProfile, error) {
	return s.profile, s.err
}

func intake(name, category, date, clock string, strength float64) models.IntakeEvent {
	return models.IntakeEvent{
		Name:            name,
		Category:        category,
		Quantity:        1,
		Unit:            "can",
		StrengthPercent: strength,
		Date:            date,
		Time:            clock,
	}
}

func weekRange() models.DateRange {
	return models.DateRange{Start: "2025-06-09", End: "2025-06-15"}
}

func evalAt() time.Time {
	return time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)
}

func TestRunFullReport(t *testing.T) {
	analyzer := New(stubProvider{profile: models.UserProfile{WeightKg: 75, Gender: models.GenderMale}})

	events := []models.IntakeEvent{
		intake("Lager", "beer", "2025-06-13", "20:00", 5),
		intake("Lager", "beer", "2025-06-13", "21:00", 5),
		intake("Merlot", "wine", "2025-06-14", "20:00", 12),
	}

	report := analyzer.Run(context.Background(), events, weekRange(), Options{
		PeriodType: models.PeriodWeek,
		WeekStart:  time.Monday,
		Now:        evalAt(),
	})

	if report.Categories.TotalEvents != 3 {
		t.Errorf("total events = %d, want 3", report.Categories.TotalEvents)
	}
	if report.Temporal.SessionCount != 2 {
		t.Errorf("session count = %d, want 2", report.Temporal.SessionCount)
	}
	if report.Temporal.PeriodDays != 7 {
		t.Errorf("period days = %d, want 7", report.Temporal.PeriodDays)
	}
	if !report.Health.BAC.Available {
		t.Error("BAC should be available with a provider profile")
	}
	if !report.Health.Risk.Configured {
		t.Error("risk should be configured with a provider profile")
	}
	if report.Drinks.Favorite != "Lager" {
		t.Errorf("favorite = %q, want Lager", report.Drinks.Favorite)
	}
	if !report.HasData() {
		t.Error("report should have data")
	}
}

func TestMassConservedAcrossComponents(t *testing.T) {
	// The same ethanol mass must appear in temporal totals and in the summed
	// category grams: standardization happens once, nothing recomputes it.
	analyzer := New(nil)
	events := []models.IntakeEvent{
		intake("Lager", "beer", "2025-06-13", "20:00", 5),
		intake("Merlot", "wine", "2025-06-14", "20:00", 12),
	}

	report := analyzer.Run(context.Background(), events, weekRange(), Options{
		PeriodType: models.PeriodWeek,
		Now:        evalAt(),
	})

	catGrams := 0.0
	for _, c := range report.Categories.Categories {
		catGrams += c.TotalEthanolGrams
	}
	if math.Abs(catGrams-report.Temporal.TotalGrams) > 0.2 {
		t.Errorf("category grams %v diverge from temporal grams %v", catGrams, report.Temporal.TotalGrams)
	}
}

func TestExplicitProfileOverridesProvider(t *testing.T) {
	analyzer := New(stubProvider{profile: models.UserProfile{WeightKg: 90, Gender: models.GenderMale}})

	explicit := models.UserProfile{WeightKg: 60, Gender: models.GenderFemale}
	events := []models.IntakeEvent{intake("Gin", "spirits", "2025-06-15", "22:00", 40)}

	report := analyzer.Run(context.Background(), events, weekRange(), Options{
		Profile:    &explicit,
		PeriodType: models.PeriodWeek,
		Now:        evalAt(),
	})

	// 1 can (33cL) at 40%: 105.6 g; immediate BAC with 60kg female profile.
	want := 105.6 / (60 * 0.55)
	if math.Abs(report.Health.BAC.GramsPerLiter-want) > 1e-6 {
		t.Errorf("BAC = %v, want %v (explicit profile must win)", report.Health.BAC.GramsPerLiter, want)
	}
}

func TestProviderFailureDegradesToNoProfile(t *testing.T) {
	analyzer := New(stubProvider{err: errors.New("store offline")})

	events := []models.IntakeEvent{intake("Lager", "beer", "2025-06-14", "20:00", 5)}
	report := analyzer.Run(context.Background(), events, weekRange(), Options{
		PeriodType: models.PeriodWeek,
		Now:        evalAt(),
	})

	if report.Health.BAC.Available {
		t.Error("BAC must be unavailable when the provider fails")
	}
	if report.Health.Risk.Configured {
		t.Error("risk must be unconfigured when the provider fails")
	}
	// The rest of the report is unaffected.
	if report.Categories.TotalEvents != 1 {
		t.Errorf("total events = %d, want 1", report.Categories.TotalEvents)
	}
}

func TestNilProviderAndNoProfile(t *testing.T) {
	analyzer := New(nil)
	events := []models.IntakeEvent{intake("Lager", "beer", "2025-06-14", "20:00", 5)}
	report := analyzer.Run(context.Background(), events, weekRange(), Options{Now: evalAt()})

	if report.Health.BAC.Available || report.Health.Risk.Configured {
		t.Error("no provider and no explicit profile must yield the unavailable sentinels")
	}
}

func TestEmptyEvents(t *testing.T) {
	analyzer := New(nil)
	report := analyzer.Run(context.Background(), nil, weekRange(), Options{
		PeriodType: models.PeriodWeek,
		Now:        evalAt(),
	})

	if report.HasData() {
		t.Error("empty input must report no data")
	}
	if report.Temporal.SessionCount != 0 || report.Temporal.AvgSessionHours != 0 {
		t.Errorf("degenerate temporal report expected, got %+v", report.Temporal)
	}
	if len(report.Categories.Categories) != 0 {
		t.Errorf("degenerate category report expected, got %+v", report.Categories)
	}
}

func TestWeeklyAverageExtrapolation(t *testing.T) {
	// 13.2 g over a single-day period extrapolates to 92.4 g/week.
	analyzer := New(nil)
	profile := models.UserProfile{WeightKg: 75, Gender: models.GenderMale}
	events := []models.IntakeEvent{intake("Lager", "beer", "2025-06-15", "20:00", 5)}

	report := analyzer.Run(context.Background(), events,
		models.DateRange{Start: "2025-06-15", End: "2025-06-15"},
		Options{Profile: &profile, PeriodType: models.PeriodDay, Now: evalAt()})

	if math.Abs(report.Health.Risk.WeeklyAvgGrams-92.4) > 0.05 {
		t.Errorf("weekly average = %v, want 92.4", report.Health.Risk.WeeklyAvgGrams)
	}
}

func TestLimitPassedThrough(t *testing.T) {
	analyzer := New(nil)
	events := []models.IntakeEvent{
		intake("Lager", "beer", "2025-06-13", "20:00", 5),
		intake("Merlot", "wine", "2025-06-14", "20:00", 12),
		intake("Gin", "spirits", "2025-06-15", "20:00", 40),
	}
	report := analyzer.Run(context.Background(), events, weekRange(), Options{
		Limit: 1,
		Now:   evalAt(),
	})
	if len(report.Drinks.Drinks) != 1 {
		t.Errorf("drink list length = %d, want 1", len(report.Drinks.Drinks))
	}
}
