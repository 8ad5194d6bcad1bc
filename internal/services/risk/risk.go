// Package risk maps aggregated ethanol intake against guideline limits and
// produces an additive-score classification.
package risk

import (
	"fmt"
	"math"

	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

// Guideline limits in grams of ethanol. Unknown gender categories fall back
// to the higher (male) limits.
const (
	weeklyLimitMale   = 150.0
	weeklyLimitFemale = 100.0
	dailyLimitMale    = 30.0
	dailyLimitFemale  = 20.0
)

// Score thresholds for the final classification.
const (
	highThreshold   = 50
	mediumThreshold = 25
)

// Inputs carries everything the classifier needs. DailyGrams maps a
// YYYY-MM-DD day to the ethanol mass consumed on it; PeriodDays is the
// normalized window length used for the drinking-day frequency.
type Inputs struct {
	Gender         models.Gender
	WeeklyAvgGrams float64
	DailyGrams     map[string]float64
	PeriodDays     int
}

// Classify runs the two phases: a pure scoring pass that accumulates points
// and factor lines, then a stateless mapping from the final score to a level.
// Interim per-factor severities never leak into the result; only the summed
// score decides the tier. An incomplete profile yields Configured=false.
func Classify(in Inputs, configured bool) models.RiskProfile {
	if !configured {
		return models.RiskProfile{Level: models.RiskLow}
	}

	score, factors, recs := scoreFactors(in)
	return models.RiskProfile{
		Configured:      true,
		Level:           levelFor(score),
		Score:           score,
		Factors:         factors,
		Recommendations: recs,
		WeeklyAvgGrams:  round1(in.WeeklyAvgGrams),
	}
}

// scoreFactors is the pure scoring phase: each independent factor adds its
// points and explanation, nothing here decides the final level.
func scoreFactors(in Inputs) (score int, factors, recs []string) {
	weeklyLimit := weeklyLimitMale
	dailyLimit := dailyLimitMale
	if in.Gender == models.GenderFemale {
		weeklyLimit = weeklyLimitFemale
		dailyLimit = dailyLimitFemale
	}

	switch {
	case in.WeeklyAvgGrams > weeklyLimit*1.5:
		score += 40
		factors = append(factors, fmt.Sprintf("weekly intake %.1f g is far above the %.0f g guideline", in.WeeklyAvgGrams, weeklyLimit))
		recs = append(recs, "Reduce weekly consumption; consider several alcohol-free days.")
	case in.WeeklyAvgGrams > weeklyLimit:
		score += 20
		factors = append(factors, fmt.Sprintf("weekly intake %.1f g exceeds the %.0f g guideline", in.WeeklyAvgGrams, weeklyLimit))
		recs = append(recs, "Weekly intake is above the guideline; aim to cut back.")
	}

	if pts, line, rec := heavyDayFactor(in.DailyGrams, dailyLimit); pts > 0 {
		score += pts
		factors = append(factors, line)
		recs = append(recs, rec)
	}

	if in.PeriodDays > 0 {
		frequency := float64(drinkingDays(in.DailyGrams)) / float64(in.PeriodDays)
		switch {
		case frequency > 0.8:
			score += 20
			factors = append(factors, fmt.Sprintf("drinking on %.0f%% of days in the period", frequency*100))
			recs = append(recs, "Plan regular alcohol-free days.")
		case frequency > 0.5:
			score += 10
			factors = append(factors, fmt.Sprintf("drinking on %.0f%% of days in the period", frequency*100))
			recs = append(recs, "Try to keep more days alcohol-free.")
		}
	}

	return score, factors, recs
}

// heavyDayFactor scores the single worst daily pattern: days beyond twice the
// daily limit dominate, otherwise any day over the limit. Multiple qualifying
// days collapse into one factor line carrying their average excess.
func heavyDayFactor(daily map[string]float64, dailyLimit float64) (int, string, string) {
	var heavy []float64
	over := false
	for _, grams := range daily {
		if grams > dailyLimit*2 {
			heavy = append(heavy, grams)
		} else if grams > dailyLimit {
			over = true
		}
	}

	if len(heavy) > 0 {
		total := 0.0
		for _, g := range heavy {
			total += g
		}
		avg := total / float64(len(heavy))
		line := fmt.Sprintf("%d day(s) above twice the daily limit (avg %.1f g)", len(heavy), avg)
		return 30, line, "Avoid heavy single-day consumption."
	}
	if over {
		return 15, "at least one day above the daily limit", "Keep single days under the daily guideline."
	}
	return 0, "", ""
}

func drinkingDays(daily map[string]float64) int {
	n := 0
	for _, grams := range daily {
		if grams > 0 {
			n++
		}
	}
	return n
}

// levelFor is the stateless classification phase: the summed score alone
// picks the tier.
func levelFor(score int) models.RiskLevel {
	switch {
	case score >= highThreshold:
		return models.RiskHigh
	case score >= mediumThreshold:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
