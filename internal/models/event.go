// Package models defines data structures and domain types.
package models

import "time"

// DateLayout is the calendar-day format used throughout the intake log.
const DateLayout = "2006-01-02"

// TimeLayout is the clock format attached to intake events.
const TimeLayout = "15:04"

// IntakeEvent is a single logged drink, exactly as recorded.
// StrengthPercent of zero means the drink contributes no ethanol but still
// counts toward volume and frequency statistics.
type IntakeEvent struct {
	Name            string
	Category        string
	Quantity        float64
	Unit            string
	StrengthPercent float64
	Date            string // YYYY-MM-DD
	Time            string // HH:MM, may be empty
	Location        string
}

// Timestamp combines Date and Time into a single instant. An empty Time is
// treated as midnight. The second return value is false when Date cannot be
// parsed; such events are skipped by time-based computations.
func (e IntakeEvent) Timestamp() (time.Time, bool) {
	day, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}, false
	}
	if e.Time == "" {
		return day, true
	}
	clock, err := time.Parse(TimeLayout, e.Time)
	if err != nil {
		return day, true
	}
	return day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute), true
}

// StandardizedEvent is an IntakeEvent annotated with its derived volume and
// ethanol mass. The derivation happens exactly once; every aggregator reads
// these fields instead of recomputing them.
type StandardizedEvent struct {
	IntakeEvent
	VolumeCL     float64
	EthanolGrams float64
}
