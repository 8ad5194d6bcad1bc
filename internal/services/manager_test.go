package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-renshaw/pourwatch-tui/internal/config"
	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	cfg := &config.Config{
		DatabasePath:    filepath.Join(t.TempDir(), "test.db"),
		RefreshInterval: time.Hour, // keep the ticker quiet during tests
		WeekStart:       time.Monday,
		ResultLimit:     10,
		DefaultPeriod:   models.PeriodWeek,
	}
	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func todayEvent(name string) models.IntakeEvent {
	return models.IntakeEvent{
		Name:            name,
		Category:        "beer",
		Quantity:        1,
		Unit:            "can",
		StrengthPercent: 5,
		Date:            time.Now().Format(models.DateLayout),
		Time:            "12:00",
	}
}

func TestRefreshProducesReport(t *testing.T) {
	m := newTestManager(t)

	if err := m.Database().InsertEvent(context.Background(), todayEvent("Lager")); err != nil {
		t.Fatalf("InsertEvent: %v", err)
	}
	m.Refresh()

	report := m.Report()
	if report == nil {
		t.Fatal("expected a report after Refresh")
	}
	if report.Categories.TotalEvents != 1 {
		t.Errorf("total events = %d, want 1", report.Categories.TotalEvents)
	}
	if report.Period != models.PeriodWeek {
		t.Errorf("period = %s, want week", report.Period)
	}
}

func TestAddEventRefreshes(t *testing.T) {
	m := newTestManager(t)

	if err := m.AddEvent(context.Background(), todayEvent("Stout")); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if m.Report() == nil || m.Report().Categories.TotalEvents != 1 {
		t.Error("AddEvent should recompute the report")
	}
}

func TestSetPeriod(t *testing.T) {
	m := newTestManager(t)
	m.SetPeriod(models.PeriodMonth)

	if m.Period() != models.PeriodMonth {
		t.Errorf("period = %s, want month", m.Period())
	}
	if m.Report() == nil || m.Report().Period != models.PeriodMonth {
		t.Error("SetPeriod should recompute with the new period")
	}
}

func TestSubscribeReceivesReportEvents(t *testing.T) {
	m := newTestManager(t)

	ch, _ := m.Subscribe()
	defer m.Unsubscribe(ch)

	m.Refresh()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-ch:
			if _, ok := ev.(ReportUpdatedEvent); ok {
				return
			}
		case <-deadline:
			t.Fatal("no ReportUpdatedEvent received")
		}
	}
}

func TestRangeFor(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		period models.PeriodType
		start  string
		end    string
	}{
		{models.PeriodDay, "2025-06-15", "2025-06-15"},
		{models.PeriodWeek, "2025-06-09", "2025-06-15"},
		{models.PeriodMonth, "2025-06-01", "2025-06-15"},
		{models.PeriodYear, "2025-01-01", "2025-06-15"},
		{models.PeriodCustom, "2025-05-17", "2025-06-15"},
	}
	for _, tt := range tests {
		got := rangeFor(tt.period, now)
		if got.Start != tt.start || got.End != tt.end {
			t.Errorf("rangeFor(%s) = %s..%s, want %s..%s",
				tt.period, got.Start, got.End, tt.start, tt.end)
		}
	}
}
