package ration

// Result is the assembled ration report returned to the caller.
type Result struct {
	Required         Requirements `json:"required"`
	Provided         Requirements `json:"provided"`
	Lines            []Line       `json:"lines"`
	TotalCost        float64      `json:"total_cost"`
	CostPerLitreMilk *float64     `json:"cost_per_litre_milk"`
	ProteinStatus    Adequacy     `json:"protein_status"`
	EnergyStatus     Adequacy     `json:"energy_status"`
}

// Assemble sums the allocation lines into aggregate provided nutrients and
// cost, classifies protein and energy adequacy, and prices the ration per
// litre of milk. CostPerLitreMilk stays nil when the milk yield is zero; a
// zero-cost ration with no production is not "free". Pure aggregation.
func Assemble(req Requirements, lines []Line, milkYieldL float64) *Result {
	res := &Result{
		Required: req,
		Lines:    lines,
	}
	if res.Lines == nil {
		res.Lines = []Line{}
	}

	for _, l := range lines {
		res.Provided.DMKg += l.DMProvidedKg
		res.Provided.CPKg += l.CPProvidedKg
		res.Provided.TDNKg += l.TDNProvidedKg
		res.TotalCost += l.Cost
	}

	if milkYieldL > 0 {
		perLitre := res.TotalCost / milkYieldL
		res.CostPerLitreMilk = &perLitre
	}

	res.ProteinStatus = Classify(req.CPKg, res.Provided.CPKg)
	res.EnergyStatus = Classify(req.TDNKg, res.Provided.TDNKg)

	return res
}
