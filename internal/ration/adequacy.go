package ration

// Adequacy labels how well the provided nutrients cover the requirement.
type Adequacy string

const (
	Adequate  Adequacy = "adequate"
	Marginal  Adequacy = "marginal"
	Deficient Adequacy = "deficient"
)

// Classify compares provided against required on one nutrient axis. Ties at
// a threshold count as the higher tier.
func Classify(requiredKg, providedKg float64) Adequacy {
	switch {
	case providedKg >= requiredKg*0.9:
		return Adequate
	case providedKg >= requiredKg*0.7:
		return Marginal
	default:
		return Deficient
	}
}
