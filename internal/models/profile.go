package models

// Gender selects the Widmark distribution factor and guideline limits.
// Values outside the two known categories fall back to the male constants,
// which are the more permissive ones.
type Gender string

const (
	// GenderMale selects the male pharmacokinetic constants.
	GenderMale Gender = "male"
	// GenderFemale selects the female pharmacokinetic constants.
	GenderFemale Gender = "female"
)

// UserProfile carries the optional physiological inputs for BAC estimation
// and risk classification. A zero profile is valid: dependent outputs degrade
// to their "unavailable" sentinels instead of failing.
type UserProfile struct {
	WeightKg float64
	Gender   Gender
}

// Complete reports whether the profile carries enough data for BAC and risk
// computation.
func (p UserProfile) Complete() bool {
	return p.WeightKg > 0 && p.Gender != ""
}
