// Package analysis assembles the per-component statistics into the full
// report consumed by the presentation layer.
package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/m-renshaw/pourwatch-tui/internal/logger"
	"github.com/m-renshaw/pourwatch-tui/internal/models"
	"github.com/m-renshaw/pourwatch-tui/internal/services/alcometric"
	"github.com/m-renshaw/pourwatch-tui/internal/services/bac"
	"github.com/m-renshaw/pourwatch-tui/internal/services/drinks"
	"github.com/m-renshaw/pourwatch-tui/internal/services/risk"
	"github.com/m-renshaw/pourwatch-tui/internal/services/sessions"
	"github.com/m-renshaw/pourwatch-tui/internal/services/temporal"
)

// ProfileProvider supplies the user profile when the caller does not pass one
// explicitly. Implementations may do I/O; a failure degrades to the empty
// profile and never reaches the caller as an error.
type ProfileProvider interface {
	Profile(ctx context.Context) (models.UserProfile, error)
}

// Options configures a single calculation call.
type Options struct {
	// Profile, when non-nil, overrides the provider lookup.
	Profile *models.UserProfile
	// Limit bounds the number of drinks in the drink report; 0 means all.
	Limit int
	// PeriodType caps the day count of the date range; defaults to custom.
	PeriodType models.PeriodType
	// WeekStart leads the weekday histogram; zero value is Sunday, the
	// default configuration uses Monday.
	WeekStart time.Weekday
	// Now is the BAC evaluation instant; zero means time.Now().
	Now time.Time
}

// Analyzer runs the analytics core. All collaborators arrive through the
// constructor; nothing is resolved through package-level state.
type Analyzer struct {
	profiles ProfileProvider
}

// New creates an Analyzer. profiles may be nil when callers always pass the
// profile through Options.
func New(profiles ProfileProvider) *Analyzer {
	return &Analyzer{profiles: profiles}
}

// Run computes the full report for the given events and range. It never
// fails: malformed events are skipped, a missing or unfetchable profile
// degrades the health section to its unavailable sentinels, and an empty
// input produces a zeroed report.
//
// The component aggregations are pure over the shared standardized slice, so
// they fan out across goroutines.
func (a *Analyzer) Run(ctx context.Context, events []models.IntakeEvent, dateRange models.DateRange, opts Options) models.Report {
	periodType := opts.PeriodType
	if periodType == "" {
		periodType = models.PeriodCustom
	}
	evalAt := opts.Now
	if evalAt.IsZero() {
		evalAt = time.Now()
	}

	profile := a.resolveProfile(ctx, opts)
	periodDays := alcometric.NormalizeDays(periodType, dateRange.Start, dateRange.End)
	standardized := alcometric.Standardize(events)
	chronological := sessions.Segment(standardized)

	report := models.Report{
		Range:       dateRange,
		Period:      periodType,
		GeneratedAt: evalAt,
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		report.Categories, report.Drinks = drinks.Aggregate(standardized, opts.Limit)
	}()

	go func() {
		defer wg.Done()
		report.Temporal = temporal.Aggregate(standardized, chronological, opts.WeekStart, periodDays)
	}()

	go func() {
		defer wg.Done()
		report.Health = healthReport(standardized, profile, periodDays, evalAt)
	}()

	wg.Wait()
	return report
}

// resolveProfile prefers the explicit profile, then the provider, then the
// empty profile. Provider failure is logged and swallowed.
func (a *Analyzer) resolveProfile(ctx context.Context, opts Options) models.UserProfile {
	if opts.Profile != nil {
		return *opts.Profile
	}
	if a.profiles == nil {
		return models.UserProfile{}
	}
	profile, err := a.profiles.Profile(ctx)
	if err != nil {
		logger.Warn("profile fetch failed, continuing without profile", "error", err)
		return models.UserProfile{}
	}
	return profile
}

func healthReport(events []models.StandardizedEvent, profile models.UserProfile, periodDays int, evalAt time.Time) models.HealthReport {
	dailyGrams := make(map[string]float64)
	totalGrams := 0.0
	for _, ev := range events {
		if ev.EthanolGrams <= 0 {
			continue
		}
		if _, ok := ev.Timestamp(); !ok {
			continue
		}
		dailyGrams[ev.Date] += ev.EthanolGrams
		totalGrams += ev.EthanolGrams
	}

	weeklyAvg := 0.0
	if periodDays > 0 {
		weeklyAvg = totalGrams / float64(periodDays) * 7
	}

	return models.HealthReport{
		BAC: bac.Estimate(events, profile, evalAt),
		Risk: risk.Classify(risk.Inputs{
			Gender:         profile.Gender,
			WeeklyAvgGrams: weeklyAvg,
			DailyGrams:     dailyGrams,
			PeriodDays:     periodDays,
		}, profile.Complete()),
	}
}
