package ration

import (
	"fmt"

	"pashumitra/internal/catalog"
)

// Service runs the calculation pipeline over a loaded catalog. It holds no
// mutable state; concurrent calculations need no locking.
type Service struct {
	catalog *catalog.Catalog
}

func NewService(c *catalog.Catalog) *Service {
	return &Service{catalog: c}
}

// Statuses exposes the status profile table for form population.
func (s *Service) Statuses() []catalog.StatusProfile {
	return s.catalog.Statuses()
}

// Feeds exposes the feed item table for form population.
func (s *Service) Feeds() []catalog.FeedItem {
	return s.catalog.Feeds()
}

// Calculate validates the request and runs requirements -> allocation ->
// assembly. All input problems surface as ErrInvalidInput before any
// allocation happens. An empty selection is valid and produces a zero-cost,
// zero-nutrient report with both adequacy labels deficient.
func (s *Service) Calculate(req CalculateRequest) (*Result, error) {
	status, ok := s.catalog.Status(req.StatusID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.StatusID)
	}
	if req.BodyWeightKg <= 0 {
		return nil, fmt.Errorf("%w: body weight must be positive, got %.2f", ErrInvalidInput, req.BodyWeightKg)
	}
	if req.MilkYieldL < 0 {
		return nil, fmt.Errorf("%w: milk yield cannot be negative, got %.2f", ErrInvalidInput, req.MilkYieldL)
	}

	selected, err := s.resolveSelection(req.Feeds)
	if err != nil {
		return nil, err
	}

	// The lactation increment only applies to milking statuses.
	milk := req.MilkYieldL
	if !status.Lactating {
		milk = 0
	}

	requirements, err := ComputeRequirements(status, req.BodyWeightKg, milk)
	if err != nil {
		return nil, err
	}

	lines := Allocate(selected, requirements, req.BodyWeightKg, milk)

	return Assemble(requirements, lines, milk), nil
}

// resolveSelection keeps only the selected feeds, resolves each price
// (override wins over the catalog default) and rejects unknown feed ids and
// negative prices.
func (s *Service) resolveSelection(choices []FeedChoice) ([]SelectedFeed, error) {
	var selected []SelectedFeed

	for _, choice := range choices {
		if !choice.Selected {
			continue
		}

		item, ok := s.catalog.Feed(choice.FeedID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown feed %q", ErrInvalidInput, choice.FeedID)
		}

		price := item.DefaultPricePerKg
		if choice.PricePerKg != nil {
			if *choice.PricePerKg < 0 {
				return nil, fmt.Errorf("%w: price for feed %q cannot be negative", ErrInvalidInput, choice.FeedID)
			}
			price = *choice.PricePerKg
		}

		selected = append(selected, SelectedFeed{Item: item, PricePerKg: price})
	}

	return selected, nil
}
