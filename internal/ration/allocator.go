package ration

import (
	"math"

	"pashumitra/internal/catalog"
)

// Fixed partition of the dry matter target between feed categories. Design
// constants, not user-configurable.
const (
	roughageDMShare    = 0.65
	concentrateDMShare = 0.35
)

// Per-feed ceilings and doses, kg as-fed per day.
const (
	greenFodderCapKg   = 20.0
	dryFodderCapKg     = 5.0
	silageCapKg        = 10.0
	otherRoughageCapKg = 5.0
	concentrateCapKg   = 5.0
	mineralMixDoseKg   = 0.05
	otherMineralDoseKg = 0.03
)

// SelectedFeed is one user-selected feed with its resolved price (override if
// supplied, else the catalog default).
type SelectedFeed struct {
	Item       catalog.FeedItem
	PricePerKg float64
}

// Line is the allocation outcome for one selected feed. Cost and the
// provided nutrients are always derived from QuantityKg, the resolved price
// and the feed's nutrient percentages, never stored independently.
type Line struct {
	FeedID        string  `json:"feed_id"`
	FeedName      string  `json:"feed_name"`
	Category      string  `json:"category"`
	QuantityKg    float64 `json:"quantity_kg"`
	PricePerKg    float64 `json:"price_per_kg"`
	Cost          float64 `json:"cost"`
	DMProvidedKg  float64 `json:"dm_provided_kg"`
	CPProvidedKg  float64 `json:"cp_provided_kg"`
	TDNProvidedKg float64 `json:"tdn_provided_kg"`
}

// Allocate computes a daily as-fed quantity for every selected feed using the
// category heuristics, then derives nutrients and cost per feed. It is
// self-contained: no state survives between invocations, and an empty
// selection yields an empty slice. Quantities are non-negative by
// construction.
//
// The concentrate total (milk*0.4 + bodyWeight*0.01 kg) is divided evenly
// across the selected concentrate feeds, each capped at 5 kg; when no
// concentrate is selected that budget is simply not allocated, with no
// carry-over to roughage.
func Allocate(selected []SelectedFeed, req Requirements, bodyWeightKg, milkYieldL float64) []Line {
	roughageShare := req.DMKg * roughageDMShare

	concentrateCount := 0
	for _, sf := range selected {
		if sf.Item.Category == catalog.Concentrate {
			concentrateCount++
		}
	}

	concentratePerFeed := 0.0
	if concentrateCount > 0 {
		concentrateTotal := milkYieldL*0.4 + bodyWeightKg*0.01
		concentratePerFeed = concentrateTotal / float64(concentrateCount)
	}

	lines := make([]Line, 0, len(selected))
	for _, sf := range selected {
		qty := quantityFor(sf.Item, roughageShare, concentratePerFeed)
		lines = append(lines, buildLine(sf, qty))
	}

	return lines
}

func quantityFor(item catalog.FeedItem, roughageShare, concentratePerFeed float64) float64 {
	switch item.Category {
	case catalog.Roughage:
		switch item.ID {
		case "green_fodder":
			return math.Min(greenFodderCapKg, roughageShare*5)
		case "dry_fodder":
			return math.Min(dryFodderCapKg, roughageShare/0.9)
		case "silage":
			return math.Min(silageCapKg, roughageShare*3)
		default:
			return math.Min(otherRoughageCapKg, roughageShare)
		}
	case catalog.Concentrate:
		return math.Min(concentrateCapKg, concentratePerFeed)
	case catalog.Mineral:
		if item.ID == "mineral_mix" {
			return mineralMixDoseKg
		}
		return otherMineralDoseKg
	default:
		return 0
	}
}

func buildLine(sf SelectedFeed, quantityKg float64) Line {
	dm := quantityKg * sf.Item.DMPct / 100

	return Line{
		FeedID:        sf.Item.ID,
		FeedName:      sf.Item.Name,
		Category:      string(sf.Item.Category),
		QuantityKg:    quantityKg,
		PricePerKg:    sf.PricePerKg,
		Cost:          quantityKg * sf.PricePerKg,
		DMProvidedKg:  dm,
		CPProvidedKg:  dm * sf.Item.CPPct / 100,
		TDNProvidedKg: dm * sf.Item.TDNPct / 100,
	}
}
