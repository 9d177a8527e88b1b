package ration

// FeedChoice is one entry of the caller's feed selection. PricePerKg, when
// present, overrides the catalog default price for this calculation only;
// the reference feed item is never mutated.
type FeedChoice struct {
	FeedID     string   `json:"feed_id"`
	Selected   bool     `json:"selected"`
	PricePerKg *float64 `json:"price_per_kg,omitempty"`
}

// CalculateRequest is the engine input for one calculation. It is transient:
// consumed by a single calculation and discarded.
type CalculateRequest struct {
	StatusID     string       `json:"status_id"`
	BodyWeightKg float64      `json:"body_weight_kg"`
	MilkYieldL   float64      `json:"milk_yield_l"`
	Feeds        []FeedChoice `json:"feeds"`
}
