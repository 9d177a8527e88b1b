package catalog

import "context"

// StaticSource serves tables held in memory. The zero value is not useful;
// use NewStaticSource for the compiled-in defaults.
type StaticSource struct {
	statuses []StatusProfile
	feeds    []FeedItem
}

// NewStaticSource returns a source backed by the compiled-in default tables.
func NewStaticSource() *StaticSource {
	return &StaticSource{
		statuses: DefaultStatusProfiles(),
		feeds:    DefaultFeedItems(),
	}
}

// NewStaticSourceWith returns a source backed by the given tables. Used by
// tests and by the file/remote loaders after decoding.
func NewStaticSourceWith(statuses []StatusProfile, feeds []FeedItem) *StaticSource {
	return &StaticSource{statuses: statuses, feeds: feeds}
}

func (s *StaticSource) StatusProfiles(ctx context.Context) ([]StatusProfile, error) {
	return s.statuses, nil
}

func (s *StaticSource) FeedItems(ctx context.Context) ([]FeedItem, error) {
	return s.feeds, nil
}
