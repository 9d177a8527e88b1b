package ration

import (
	"fmt"

	"pashumitra/internal/catalog"
)

// Dry matter allowance per litre of daily milk, on top of the status
// baseline.
const milkDMAllowancePerLitre = 0.4

// Requirements are the absolute daily nutrient targets for one animal.
type Requirements struct {
	DMKg  float64 `json:"dm_kg"`
	CPKg  float64 `json:"cp_kg"`
	TDNKg float64 `json:"tdn_kg"`
}

// ComputeRequirements derives daily dry matter, crude protein and TDN targets
// from body weight, the status profile and milk yield. For non-lactating
// statuses the milk yield is treated as zero. Pure function.
func ComputeRequirements(status catalog.StatusProfile, bodyWeightKg, milkYieldL float64) (Requirements, error) {
	if bodyWeightKg <= 0 {
		return Requirements{}, fmt.Errorf("%w: body weight must be positive, got %.2f", ErrInvalidInput, bodyWeightKg)
	}
	if milkYieldL < 0 {
		return Requirements{}, fmt.Errorf("%w: milk yield cannot be negative, got %.2f", ErrInvalidInput, milkYieldL)
	}

	if !status.Lactating {
		milkYieldL = 0
	}

	baseDM := bodyWeightKg * status.DMRequiredPct / 100
	totalDM := baseDM + milkYieldL*milkDMAllowancePerLitre

	return Requirements{
		DMKg:  totalDM,
		CPKg:  totalDM * status.ProteinPct / 100,
		TDNKg: totalDM * status.TDNPct / 100,
	}, nil
}
