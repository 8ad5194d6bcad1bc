package info

import (
	"strings"
	"testing"
	"time"

	"github.com/m-renshaw/pourwatch-tui/internal/app"
	"github.com/m-renshaw/pourwatch-tui/internal/config"
	"github.com/m-renshaw/pourwatch-tui/internal/models"
	"github.com/m-renshaw/pourwatch-tui/internal/services"
)

func testConfig() *config.Config {
	return &config.Config{
		DatabasePath:    "/tmp/pourwatch/events.db",
		RefreshInterval: time.Minute,
		WeekStart:       time.Monday,
		BACAlertGPerL:   0.5,
		ResultLimit:     10,
		DefaultPeriod:   models.PeriodWeek,
	}
}

func TestModel_View(t *testing.T) {
	m := New(app.NewState(), testConfig())
	m.SetSize(90, 40)

	view := m.View()
	for _, want := range []string{"Configuration", "events.db", "Monday", "About", "Widmark"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
	if !strings.Contains(view, "not configured") {
		t.Error("View should flag the missing profile")
	}
}

func TestModel_View_NilConfig(t *testing.T) {
	m := New(app.NewState(), nil)
	m.SetSize(90, 40)
	if !strings.Contains(m.View(), "Configuration not loaded") {
		t.Error("View should handle a nil config")
	}
}

func TestModel_View_Stats(t *testing.T) {
	state := app.NewState()
	state.SetStats(services.StatsEvent{
		EventCount:    12,
		CategoryCount: 3,
		FirstDate:     "2026-01-02",
		LastDate:      "2026-08-30",
	})

	m := New(state, testConfig())
	m.SetSize(90, 40)

	view := m.View()
	for _, want := range []string{"Intake Log", "12", "2026-01-02", "2026-08-30"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestModel_ShortHelp(t *testing.T) {
	m := New(app.NewState(), testConfig())
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}
}
