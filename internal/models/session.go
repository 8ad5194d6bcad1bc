package models

import "time"

// Session is a maximal run of intake events with no inter-event gap exceeding
// the segmenter's inactivity threshold. Duration is zero for a single-event
// session. Sessions are read-only once built.
type Session struct {
	Start             time.Time
	End               time.Time
	Events            []StandardizedEvent
	DurationHours     float64
	TotalVolumeCL     float64
	TotalEthanolGrams float64
}

// Count returns the number of events in the session.
func (s Session) Count() int {
	return len(s.Events)
}
