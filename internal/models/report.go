package models

import "time"

// CategoryStat is the externally exposed aggregate for one drink category.
// Location and unit sets are collapsed to counts before leaving the
// aggregator; callers never see the working sets.
type CategoryStat struct {
	Name              string
	Count             int
	Percentage        int // whole-number share of all events
	TotalVolumeCL     float64
	TotalEthanolGrams float64
	LocationCount     int
	UnitCount         int
	FavoriteDrink     string
}

// CategoryReport summarizes consumption by category.
type CategoryReport struct {
	Categories   []CategoryStat
	TotalEvents  int
	TopCategory  string
	Balanced     bool // top category holds at most 60% of events
	Concentrated bool // top category holds at least 80% of events
}

// DrinkStat is the externally exposed aggregate for one named drink.
type DrinkStat struct {
	Name              string
	Category          string
	Count             int
	Percentage        int
	TotalVolumeCL     float64
	TotalEthanolGrams float64
	Regularity        float64 // 0-100, spacing evenness of repeat consumption
}

// DrinkReport summarizes consumption by individual drink.
type DrinkReport struct {
	Drinks      []DrinkStat
	Favorite    string
	TotalEvents int
}

// WeekdayBucket is one bar of the day-of-week histogram, already ordered so
// the first bucket is the configured start of the week.
type WeekdayBucket struct {
	Day   time.Weekday
	Count int
}

// TemporalReport carries the time-distribution statistics. Durations and
// averages are rounded to one decimal.
type TemporalReport struct {
	HourHistogram    [24]int
	WeekdayHistogram []WeekdayBucket
	PeakHour         int
	PeakWeekday      time.Weekday
	SessionCount     int
	AvgSessionHours  float64 // zero-duration sessions excluded from the mean
	AvgGapHours      float64 // chronological inter-session gaps, positive only
	DrinkingDays     int
	PeriodDays       int
	TotalVolumeCL    float64
	TotalGrams       float64
}

// BACEstimate is a point-in-time blood alcohol concentration derived by the
// Widmark replay. Available is false when the profile is incomplete; callers
// must distinguish "no alcohol" from "cannot estimate".
type BACEstimate struct {
	Available     bool
	GramsPerLiter float64
	RawGrams      float64
	EvaluatedAt   time.Time
}

// RiskLevel is the guideline-based classification tier.
type RiskLevel string

const (
	// RiskLow indicates consumption within guideline limits.
	RiskLow RiskLevel = "low"
	// RiskMedium indicates consumption moderately above limits.
	RiskMedium RiskLevel = "medium"
	// RiskHigh indicates consumption well above limits.
	RiskHigh RiskLevel = "high"
)

// RiskProfile is the additive-score classification output. Configured is
// false when no user profile was available.
type RiskProfile struct {
	Configured      bool
	Level           RiskLevel
	Score           int
	Factors         []string
	Recommendations []string
	WeeklyAvgGrams  float64
}

// HealthReport bundles the profile-dependent outputs.
type HealthReport struct {
	BAC  BACEstimate
	Risk RiskProfile
}

// Report is the full analytics result for one calculation call.
type Report struct {
	Range       DateRange
	Period      PeriodType
	Categories  CategoryReport
	Temporal    TemporalReport
	Drinks      DrinkReport
	Health      HealthReport
	GeneratedAt time.Time
}

// HasData reports whether any events fell inside the analyzed range.
func (r *Report) HasData() bool {
	return r != nil && r.Categories.TotalEvents > 0
}
