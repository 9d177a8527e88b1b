package animal

import "time"

// Animal is one entry in the livestock register, owned by the farmer that
// recorded it.
type Animal struct {
	ID        string   `json:"id"`
	FarmerID  string   `json:"farmer_id"`
	TagID     string   `json:"tag_id"`
	Species   string   `json:"species"`
	Breed     string   `json:"breed"`
	AgeMonths int      `json:"age_months"`
	Gender    string   `json:"gender"`
	Status    string   `json:"status"`
	WeightKg  *float64 `json:"weight_kg,omitempty"`
	Notes     string   `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var allowedSpecies = map[string]bool{
	"cattle":  true,
	"buffalo": true,
	"sheep":   true,
	"goat":    true,
	"pig":     true,
	"poultry": true,
	"dog":     true,
	"cat":     true,
	"horse":   true,
	"donkey":  true,
	"camel":   true,
}

func validSpecies(species string) bool {
	return allowedSpecies[species]
}
