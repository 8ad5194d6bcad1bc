// Package bac estimates blood alcohol concentration with a single-compartment
// Widmark model replayed over the event sequence.
package bac

import (
	"sort"
	"time"

	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

// EliminationRate is the constant ethanol clearance in g/L per hour.
const EliminationRate = 0.15

// Widmark distribution volume factors.
const (
	factorMale   = 0.68
	factorFemale = 0.55
)

// DistributionFactor returns the Widmark r for a gender category. Unknown
// categories get the larger (male) factor, which yields the lower and thus
// more conservative concentration estimate.
func DistributionFactor(g models.Gender) float64 {
	if g == models.GenderFemale {
		return factorFemale
	}
	return factorMale
}

type dose struct {
	ts    time.Time
	grams float64
}

// Estimate replays the event sequence and returns the concentration at the
// given evaluation time. Events with no ethanol or an unparsable timestamp
// are skipped silently. Without a complete profile the estimate is marked
// unavailable; it is never an error.
//
// Between events the model is linear and monotonically non-increasing:
// concentration falls by EliminationRate per hour, floored at zero, then
// jumps by grams/(weight*r) at each intake.
func Estimate(events []models.StandardizedEvent, profile models.UserProfile, at time.Time) models.BACEstimate {
	if at.IsZero() {
		at = time.Now()
	}
	if !profile.Complete() {
		return models.BACEstimate{EvaluatedAt: at}
	}

	doses := make([]dose, 0, len(events))
	for _, ev := range events {
		if ev.EthanolGrams <= 0 {
			continue
		}
		ts, ok := ev.Timestamp()
		if !ok {
			continue
		}
		doses = append(doses, dose{ts: ts, grams: ev.EthanolGrams})
	}

	estimate := models.BACEstimate{Available: true, EvaluatedAt: at}
	if len(doses) == 0 {
		return estimate
	}

	sort.SliceStable(doses, func(i, j int) bool {
		return doses[i].ts.Before(doses[j].ts)
	})

	bodyWater := profile.WeightKg * DistributionFactor(profile.Gender)

	concentration := 0.0
	prev := doses[0].ts
	for _, d := range doses {
		concentration = eliminate(concentration, d.ts.Sub(prev).Hours())
		concentration += d.grams / bodyWater
		estimate.RawGrams += d.grams
		prev = d.ts
	}

	estimate.GramsPerLiter = eliminate(concentration, at.Sub(prev).Hours())
	return estimate
}

// eliminate applies constant-rate clearance over elapsed hours, floored at
// zero. Negative elapsed time (evaluation before the last event) clears
// nothing.
func eliminate(concentration, hours float64) float64 {
	if hours <= 0 {
		return concentration
	}
	concentration -= EliminationRate * hours
	if concentration < 0 {
		return 0
	}
	return concentration
}
