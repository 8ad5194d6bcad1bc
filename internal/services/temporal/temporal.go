// Package temporal builds hour-of-day and day-of-week distributions plus
// session duration statistics.
package temporal

import (
	"math"
	"time"

	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

// Aggregate computes the time-distribution report. Sessions must be supplied
// in chronological order (as produced by sessions.Segment); inter-session
// gaps are measured between one session's end and the next one's start, and
// non-positive gaps are discarded as sort noise rather than elapsed time.
//
// weekStart picks which weekday leads the histogram; periodDays is the
// normalized length of the analysis window.
func Aggregate(events []models.StandardizedEvent, chronological []models.Session, weekStart time.Weekday, periodDays int) models.TemporalReport {
	report := models.TemporalReport{
		SessionCount: len(chronological),
		PeriodDays:   periodDays,
	}

	var weekdayCounts [7]int
	days := make(map[string]struct{})

	for _, ev := range events {
		ts, ok := ev.Timestamp()
		if !ok {
			continue
		}
		report.HourHistogram[ts.Hour()]++
		weekdayCounts[int(ts.Weekday())]++
		days[ev.Date] = struct{}{}
		report.TotalVolumeCL += ev.VolumeCL
		report.TotalGrams += ev.EthanolGrams
	}

	report.TotalVolumeCL = round1(report.TotalVolumeCL)
	report.TotalGrams = round1(report.TotalGrams)
	report.DrinkingDays = len(days)
	report.PeakHour = peakHour(report.HourHistogram)
	report.WeekdayHistogram = orderWeekdays(weekdayCounts, weekStart)
	report.PeakWeekday = peakWeekday(report.WeekdayHistogram)

	report.AvgSessionHours = avgSessionHours(chronological)
	report.AvgGapHours = avgGapHours(chronological)

	return report
}

// peakHour returns the first hour reaching the maximum count.
func peakHour(hist [24]int) int {
	peak := 0
	for h, c := range hist {
		if c > hist[peak] {
			peak = h
		}
	}
	return peak
}

// orderWeekdays rotates the raw Sunday-first counts so the configured week
// start leads the histogram.
func orderWeekdays(counts [7]int, weekStart time.Weekday) []models.WeekdayBucket {
	out := make([]models.WeekdayBucket, 7)
	for i := range out {
		day := time.Weekday((int(weekStart) + i) % 7)
		out[i] = models.WeekdayBucket{Day: day, Count: counts[int(day)]}
	}
	return out
}

// peakWeekday returns the first bucket reaching the maximum, in histogram
// order, so ties resolve to the earliest day of the configured week.
func peakWeekday(hist []models.WeekdayBucket) time.Weekday {
	if len(hist) == 0 {
		return time.Monday
	}
	peak := hist[0]
	for _, b := range hist[1:] {
		if b.Count > peak.Count {
			peak = b
		}
	}
	return peak.Day
}

// avgSessionHours averages session durations, leaving single-event sessions
// out of the mean (their zero duration says nothing about pace) while they
// still count toward SessionCount.
func avgSessionHours(sessions []models.Session) float64 {
	total := 0.0
	n := 0
	for _, s := range sessions {
		if s.DurationHours <= 0 {
			continue
		}
		total += s.DurationHours
		n++
	}
	if n == 0 {
		return 0
	}
	return round1(total / float64(n))
}

// avgGapHours averages the positive gaps between consecutive chronological
// sessions.
func avgGapHours(sessions []models.Session) float64 {
	total := 0.0
	n := 0
	for i := 1; i < len(sessions); i++ {
		gap := sessions[i].Start.Sub(sessions[i-1].End).Hours()
		if gap <= 0 {
			continue
		}
		total += gap
		n++
	}
	if n == 0 {
		return 0
	}
	return round1(total / float64(n))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
