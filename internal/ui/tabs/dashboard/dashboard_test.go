package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/m-renshaw/pourwatch-tui/internal/app"
	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		Range:  models.DateRange{Start: "2026-08-25", End: "2026-08-31"},
		Period: models.PeriodWeek,
		Categories: models.CategoryReport{
			TotalEvents: 4,
			TopCategory: "Beer",
		},
		Temporal: models.TemporalReport{
			DrinkingDays:  3,
			PeriodDays:    7,
			TotalVolumeCL: 99,
			TotalGrams:    39.6,
		},
		Drinks: models.DrinkReport{Favorite: "Pilsner"},
		Health: models.HealthReport{
			BAC: models.BACEstimate{Available: true, GramsPerLiter: 0.31, EvaluatedAt: time.Now()},
			Risk: models.RiskProfile{
				Configured:      true,
				Level:           models.RiskMedium,
				Score:           35,
				Factors:         []string{"Weekly intake above the guideline limit"},
				Recommendations: []string{"Plan alcohol-free days"},
				WeeklyAvgGrams:  39.6,
			},
		},
		GeneratedAt: time.Now(),
	}
}

func TestNew(t *testing.T) {
	m := New(app.NewState(), nil, 0.5)
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.bacThreshold != 0.5 {
		t.Errorf("threshold = %v, want 0.5", m.bacThreshold)
	}
}

func TestNew_ThresholdFallback(t *testing.T) {
	m := New(app.NewState(), nil, 0)
	if m.bacThreshold <= 0 {
		t.Error("non-positive threshold should fall back to a sane default")
	}
}

func TestModel_View_Loading(t *testing.T) {
	m := New(app.NewState(), nil, 0.5)
	m.SetSize(80, 24)
	if !strings.Contains(m.View(), "Computing") {
		t.Error("View should show loading state before a report lands")
	}
}

func TestModel_View_Empty(t *testing.T) {
	m := New(app.NewState(), nil, 0.5)
	m.SetSize(80, 24)
	m.Update(app.ReportLoadedMsg{Report: &models.Report{}})
	if !strings.Contains(m.View(), "No intake events") {
		t.Error("View should show the empty message for a data-free report")
	}
}

func TestModel_View_WithReport(t *testing.T) {
	m := New(app.NewState(), nil, 0.5)
	m.SetSize(100, 40)
	m.Update(app.ReportLoadedMsg{Report: sampleReport()})

	view := m.View()
	for _, want := range []string{"Blood Alcohol Estimate", "Period Summary", "Guideline Risk", "Pilsner", "MEDIUM"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestModel_View_UnavailableBAC(t *testing.T) {
	m := New(app.NewState(), nil, 0.5)
	m.SetSize(100, 40)

	report := sampleReport()
	report.Health.BAC = models.BACEstimate{}
	report.Health.Risk = models.RiskProfile{Level: models.RiskLow}
	m.Update(app.ReportLoadedMsg{Report: report})

	view := m.View()
	if !strings.Contains(view, "not configured") {
		t.Error("View should explain the missing profile")
	}
}

func TestModel_Update_Key(t *testing.T) {
	m := New(app.NewState(), nil, 0.5)
	m.SetSize(80, 24)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if updated == nil {
		t.Error("Update returned nil model")
	}
}

func TestModel_ShortHelp(t *testing.T) {
	m := New(app.NewState(), nil, 0.5)
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}
}
