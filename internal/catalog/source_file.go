package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// catalogFile is the TOML document shape:
//
//	[[status]]
//	id = "milking_medium"
//	label = "Milking (5-12 L/day)"
//	dm_required_pct = 4.0
//	protein_pct = 16.0
//	tdn_pct = 68.0
//	lactating = true
//
//	[[feed]]
//	id = "green_fodder"
//	name = "Green Fodder"
//	category = "roughage"
//	dm_pct = 20.0
//	cp_pct = 8.0
//	tdn_pct = 55.0
//	default_price_per_kg = 2.0
type catalogFile struct {
	Statuses []StatusProfile `toml:"status"`
	Feeds    []FeedItem      `toml:"feed"`
}

// FileSource reads the reference tables from a TOML file once, at first use.
type FileSource struct {
	path string
	doc  *catalogFile
}

// NewFileSource returns a source reading from the given TOML file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) load() (*catalogFile, error) {
	if s.doc != nil {
		return s.doc, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var doc catalogFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", s.path, err)
	}

	s.doc = &doc
	return s.doc, nil
}

func (s *FileSource) StatusProfiles(ctx context.Context) ([]StatusProfile, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Statuses, nil
}

func (s *FileSource) FeedItems(ctx context.Context) ([]FeedItem, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Feeds, nil
}
