// Package alcometric converts raw intake records into standardized volumes
// and ethanol masses, and normalizes analysis periods to day counts.
package alcometric

import (
	"strings"
	"time"

	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

// ethanolDensity approximates the density of ethanol in g/mL.
const ethanolDensity = 0.8

// servingVolumesCL maps serving-style units to reference volumes in
// centilitres.
var servingVolumesCL = map[string]float64{
	"shot":   4,
	"glass":  15,
	"can":    33,
	"pint":   50,
	"bottle": 75,
}

// metricFactorsCL converts metric volume units to centilitres.
var metricFactorsCL = map[string]float64{
	"ml": 0.1,
	"cl": 1,
	"l":  100,
}

// StandardizeVolume converts a quantity in the given unit to centilitres.
// Unknown units are assumed to already be centilitres.
func StandardizeVolume(quantity float64, unit string) float64 {
	if quantity <= 0 {
		return 0
	}
	u := strings.ToLower(strings.TrimSpace(unit))
	if f, ok := metricFactorsCL[u]; ok {
		return quantity * f
	}
	if v, ok := servingVolumesCL[u]; ok {
		return quantity * v
	}
	return quantity
}

// EthanolGrams computes the mass of pure ethanol in a drink. A strength of
// zero (soft drink, or unknown) yields zero grams, not an error.
func EthanolGrams(volumeCL, strengthPercent float64) float64 {
	if volumeCL <= 0 || strengthPercent <= 0 {
		return 0
	}
	// volumeCL * 10 mL/cL * strength/100 * density, collapsed.
	return volumeCL * strengthPercent * ethanolDensity / 10
}

// Standardize annotates every event with its derived volume and ethanol mass.
// All downstream aggregators consume this output; nothing recomputes the
// derivation independently.
func Standardize(events []models.IntakeEvent) []models.StandardizedEvent {
	out := make([]models.StandardizedEvent, 0, len(events))
	for _, ev := range events {
		vol := StandardizeVolume(ev.Quantity, ev.Unit)
		out = append(out, models.StandardizedEvent{
			IntakeEvent:  ev,
			VolumeCL:     vol,
			EthanolGrams: EthanolGrams(vol, ev.StrengthPercent),
		})
	}
	return out
}

// NormalizeDays bounds the inclusive day count of [start, end] by the
// semantics of the period type: a "day" is always 1 day, a "week" at most 7,
// a "month" at most the start month's length, a "year" at most 365 or 366
// depending on the start year. Custom or unrecognized types are uncapped.
// Unparsable dates yield 1 so that downstream averages never divide by zero.
//
// The month cap is anchored to the start date's month even when the range
// spans a month boundary; see DESIGN.md.
func NormalizeDays(periodType models.PeriodType, start, end string) int {
	s, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return 1
	}
	e, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return 1
	}

	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	switch periodType {
	case models.PeriodDay:
		return 1
	case models.PeriodWeek:
		return min(days, 7)
	case models.PeriodMonth:
		return min(days, daysInMonth(s))
	case models.PeriodYear:
		limit := 365
		if isLeapYear(s.Year()) {
			limit = 366
		}
		return min(days, limit)
	default:
		return days
	}
}

// daysInMonth returns the number of days in t's month.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
