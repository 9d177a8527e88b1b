package catalog

import (
	"context"
	"fmt"
)

// Category partitions feed items for the allocation heuristics.
type Category string

const (
	Roughage    Category = "roughage"
	Concentrate Category = "concentrate"
	Mineral     Category = "mineral"
)

// StatusProfile describes the nutrient demand of one physiological status.
// DMRequiredPct is dry matter as % of body weight; ProteinPct and TDNPct are
// % of the required dry matter.
type StatusProfile struct {
	ID            string  `json:"id" toml:"id"`
	Label         string  `json:"label" toml:"label"`
	DMRequiredPct float64 `json:"dm_required_pct" toml:"dm_required_pct"`
	ProteinPct    float64 `json:"protein_pct" toml:"protein_pct"`
	TDNPct        float64 `json:"tdn_pct" toml:"tdn_pct"`
	Lactating     bool    `json:"lactating" toml:"lactating"`
}

// FeedItem describes one feed ingredient. DMPct is dry matter as % of as-fed
// weight; CPPct and TDNPct are % of dry matter.
type FeedItem struct {
	ID                string   `json:"id" toml:"id"`
	Name              string   `json:"name" toml:"name"`
	Category          Category `json:"category" toml:"category"`
	DMPct             float64  `json:"dm_pct" toml:"dm_pct"`
	CPPct             float64  `json:"cp_pct" toml:"cp_pct"`
	TDNPct            float64  `json:"tdn_pct" toml:"tdn_pct"`
	DefaultPricePerKg float64  `json:"default_price_per_kg" toml:"default_price_per_kg"`
}

// Source supplies the reference tables at startup.
type Source interface {
	StatusProfiles(ctx context.Context) ([]StatusProfile, error)
	FeedItems(ctx context.Context) ([]FeedItem, error)
}

// Catalog is the immutable, validated snapshot of the reference tables with
// id lookups built once. It is safe for concurrent reads.
type Catalog struct {
	statuses   []StatusProfile
	feeds      []FeedItem
	statusByID map[string]StatusProfile
	feedByID   map[string]FeedItem
}

// Load fetches both tables from the source and validates them.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	statuses, err := src.StatusProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load status profiles: %w", err)
	}

	feeds, err := src.FeedItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feed items: %w", err)
	}

	return New(statuses, feeds)
}

// New builds and validates a catalog from already-materialized tables.
func New(statuses []StatusProfile, feeds []FeedItem) (*Catalog, error) {
	if len(statuses) == 0 {
		return nil, fmt.Errorf("catalog has no status profiles")
	}
	if len(feeds) == 0 {
		return nil, fmt.Errorf("catalog has no feed items")
	}

	c := &Catalog{
		statuses:   statuses,
		feeds:      feeds,
		statusByID: make(map[string]StatusProfile, len(statuses)),
		feedByID:   make(map[string]FeedItem, len(feeds)),
	}

	for _, s := range statuses {
		if s.ID == "" {
			return nil, fmt.Errorf("status profile with empty id")
		}
		if _, dup := c.statusByID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate status profile %q", s.ID)
		}
		if s.DMRequiredPct <= 0 || s.ProteinPct <= 0 || s.TDNPct <= 0 {
			return nil, fmt.Errorf("status profile %q has non-positive percentages", s.ID)
		}
		c.statusByID[s.ID] = s
	}

	for _, f := range feeds {
		if f.ID == "" {
			return nil, fmt.Errorf("feed item with empty id")
		}
		if _, dup := c.feedByID[f.ID]; dup {
			return nil, fmt.Errorf("duplicate feed item %q", f.ID)
		}
		switch f.Category {
		case Roughage, Concentrate, Mineral:
		default:
			return nil, fmt.Errorf("feed item %q has unknown category %q", f.ID, f.Category)
		}
		if f.DMPct <= 0 || f.DMPct > 100 {
			return nil, fmt.Errorf("feed item %q has dry matter %.2f%% outside (0,100]", f.ID, f.DMPct)
		}
		if f.CPPct < 0 || f.TDNPct < 0 || f.DefaultPricePerKg < 0 {
			return nil, fmt.Errorf("feed item %q has negative nutrient or price values", f.ID)
		}
		c.feedByID[f.ID] = f
	}

	return c, nil
}

// Status returns the profile for the given id.
func (c *Catalog) Status(id string) (StatusProfile, bool) {
	s, ok := c.statusByID[id]
	return s, ok
}

// Feed returns the feed item for the given id.
func (c *Catalog) Feed(id string) (FeedItem, bool) {
	f, ok := c.feedByID[id]
	return f, ok
}

// Statuses returns the status profiles in load order.
func (c *Catalog) Statuses() []StatusProfile {
	out := make([]StatusProfile, len(c.statuses))
	copy(out, c.statuses)
	return out
}

// Feeds returns the feed items in load order.
func (c *Catalog) Feeds() []FeedItem {
	out := make([]FeedItem, len(c.feeds))
	copy(out, c.feeds)
	return out
}
