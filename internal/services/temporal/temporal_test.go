package temporal

import (
	"testing"
	"time"

	"github.com/m-renshaw/pourwatch-tui/internal/models"
	"github.com/m-renshaw/pourwatch-tui/internal/services/sessions"
)

func event(date, clock string) models.StandardizedEvent {
	return models.StandardizedEvent{
		IntakeEvent:  models.IntakeEvent{Name: "Beer", Date: date, Time: clock},
		VolumeCL:     33,
		EthanolGrams: 13.2,
	}
}

func aggregate(events []models.StandardizedEvent, periodDays int) models.TemporalReport {
	return Aggregate(events, sessions.Segment(events), time.Monday, periodDays)
}

func TestHourHistogram(t *testing.T) {
	report := aggregate([]models.StandardizedEvent{
		event("2025-06-14", "21:15"),
		event("2025-06-14", "21:45"),
		event("2025-06-15", "18:00"),
	}, 7)

	if report.HourHistogram[21] != 2 {
		t.Errorf("hour 21 count = %d, want 2", report.HourHistogram[21])
	}
	if report.HourHistogram[18] != 1 {
		t.Errorf("hour 18 count = %d, want 1", report.HourHistogram[18])
	}
	if report.PeakHour != 21 {
		t.Errorf("peak hour = %d, want 21", report.PeakHour)
	}
}

func TestPeakHourTieBreaksToFirst(t *testing.T) {
	report := aggregate([]models.StandardizedEvent{
		event("2025-06-14", "09:00"),
		event("2025-06-14", "21:00"),
	}, 1)
	if report.PeakHour != 9 {
		t.Errorf("tied peak should resolve to the earliest hour, got %d", report.PeakHour)
	}
}

func TestWeekdayHistogramStartsOnConfiguredDay(t *testing.T) {
	// 2025-06-14 is a Saturday, 2025-06-16 a Monday.
	events := []models.StandardizedEvent{
		event("2025-06-14", "20:00"),
		event("2025-06-16", "20:00"),
	}
	report := Aggregate(events, sessions.Segment(events), time.Monday, 7)

	if len(report.WeekdayHistogram) != 7 {
		t.Fatalf("expected 7 weekday buckets, got %d", len(report.WeekdayHistogram))
	}
	if report.WeekdayHistogram[0].Day != time.Monday {
		t.Errorf("first bucket = %v, want Monday", report.WeekdayHistogram[0].Day)
	}
	if report.WeekdayHistogram[0].Count != 1 {
		t.Errorf("Monday count = %d, want 1", report.WeekdayHistogram[0].Count)
	}
	if report.WeekdayHistogram[5].Day != time.Saturday || report.WeekdayHistogram[5].Count != 1 {
		t.Errorf("Saturday bucket wrong: %+v", report.WeekdayHistogram[5])
	}
	// Tie between Monday and Saturday resolves to the earlier bucket.
	if report.PeakWeekday != time.Monday {
		t.Errorf("peak weekday = %v, want Monday", report.PeakWeekday)
	}
}

func TestAvgSessionHoursExcludesSingletons(t *testing.T) {
	events := []models.StandardizedEvent{
		// Two-hour session.
		event("2025-06-13", "20:00"),
		event("2025-06-13", "22:00"),
		// Single-event session: counted, but not averaged.
		event("2025-06-15", "20:00"),
	}
	report := aggregate(events, 7)

	if report.SessionCount != 2 {
		t.Fatalf("session count = %d, want 2", report.SessionCount)
	}
	if report.AvgSessionHours != 2.0 {
		t.Errorf("avg session hours = %v, want 2.0 (singleton excluded)", report.AvgSessionHours)
	}
}

func TestAvgGapHours(t *testing.T) {
	events := []models.StandardizedEvent{
		event("2025-06-13", "20:00"),
		event("2025-06-13", "22:00"), // session ends 22:00
		event("2025-06-14", "20:00"), // gap 22h
		event("2025-06-15", "20:00"), // gap 24h
	}
	report := aggregate(events, 7)

	if report.SessionCount != 3 {
		t.Fatalf("session count = %d, want 3", report.SessionCount)
	}
	if report.AvgGapHours != 23.0 {
		t.Errorf("avg gap hours = %v, want 23.0", report.AvgGapHours)
	}
}

func TestDrinkingDaysAndTotals(t *testing.T) {
	events := []models.StandardizedEvent{
		event("2025-06-13", "20:00"),
		event("2025-06-13", "22:00"),
		event("2025-06-15", "20:00"),
	}
	report := aggregate(events, 7)

	if report.DrinkingDays != 2 {
		t.Errorf("drinking days = %d, want 2", report.DrinkingDays)
	}
	if report.PeriodDays != 7 {
		t.Errorf("period days = %d, want 7", report.PeriodDays)
	}
	if report.TotalVolumeCL != 99.0 {
		t.Errorf("total volume = %v, want 99.0", report.TotalVolumeCL)
	}
	if report.TotalGrams != 39.6 {
		t.Errorf("total grams = %v, want 39.6", report.TotalGrams)
	}
}

func TestAggregateEmpty(t *testing.T) {
	report := aggregate(nil, 1)
	if report.SessionCount != 0 || report.AvgSessionHours != 0 || report.AvgGapHours != 0 {
		t.Errorf("empty input must produce zeroed report, got %+v", report)
	}
	if report.DrinkingDays != 0 {
		t.Errorf("drinking days = %d, want 0", report.DrinkingDays)
	}
}

func TestUnparsableEventsSkipped(t *testing.T) {
	events := []models.StandardizedEvent{
		event("junk", "20:00"),
		event("2025-06-14", "20:00"),
	}
	report := aggregate(events, 1)
	if report.TotalGrams != 13.2 {
		t.Errorf("unparsable event must not contribute, grams = %v", report.TotalGrams)
	}
	if report.DrinkingDays != 1 {
		t.Errorf("drinking days = %d, want 1", report.DrinkingDays)
	}
}
