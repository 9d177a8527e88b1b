package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTablesValidate(t *testing.T) {
	c, err := New(DefaultStatusProfiles(), DefaultFeedItems())
	if err != nil {
		t.Fatalf("default tables failed validation: %v", err)
	}

	status, ok := c.Status("milking_medium")
	if !ok {
		t.Fatal("milking_medium missing from defaults")
	}
	if status.DMRequiredPct != 4.0 || status.ProteinPct != 16 || status.TDNPct != 68 {
		t.Errorf("milking_medium profile changed: %+v", status)
	}
	if !status.Lactating {
		t.Error("milking_medium must be lactating")
	}

	feed, ok := c.Feed("green_fodder")
	if !ok {
		t.Fatal("green_fodder missing from defaults")
	}
	if feed.DMPct != 20 || feed.CPPct != 8 || feed.TDNPct != 55 {
		t.Errorf("green_fodder profile changed: %+v", feed)
	}
	if feed.Category != Roughage {
		t.Errorf("green_fodder category: expected roughage, got %s", feed.Category)
	}
}

func TestDefaultsCoverAllCategories(t *testing.T) {
	seen := map[Category]bool{}
	for _, f := range DefaultFeedItems() {
		seen[f.Category] = true
	}
	for _, cat := range []Category{Roughage, Concentrate, Mineral} {
		if !seen[cat] {
			t.Errorf("no default feed in category %s", cat)
		}
	}
}

func TestNewRejectsBadTables(t *testing.T) {
	validStatus := DefaultStatusProfiles()
	validFeeds := DefaultFeedItems()

	cases := []struct {
		name     string
		statuses []StatusProfile
		feeds    []FeedItem
	}{
		{"no statuses", nil, validFeeds},
		{"no feeds", validStatus, nil},
		{
			"duplicate status id",
			append(DefaultStatusProfiles(), StatusProfile{ID: "dry", Label: "Dup", DMRequiredPct: 1, ProteinPct: 1, TDNPct: 1}),
			validFeeds,
		},
		{
			"duplicate feed id",
			validStatus,
			append(DefaultFeedItems(), FeedItem{ID: "salt", Name: "Dup", Category: Mineral, DMPct: 96}),
		},
		{
			"unknown category",
			validStatus,
			[]FeedItem{{ID: "mystery", Name: "Mystery", Category: "byproduct", DMPct: 50}},
		},
		{
			"zero dry matter",
			validStatus,
			[]FeedItem{{ID: "water", Name: "Water", Category: Roughage, DMPct: 0}},
		},
		{
			"negative price",
			validStatus,
			[]FeedItem{{ID: "cheap", Name: "Cheap", Category: Roughage, DMPct: 50, DefaultPricePerKg: -1}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.statuses, tc.feeds); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadFromStaticSource(t *testing.T) {
	c, err := Load(context.Background(), NewStaticSource())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Statuses()) == 0 || len(c.Feeds()) == 0 {
		t.Fatal("expected populated tables")
	}
}

func TestLoadFromTOMLFile(t *testing.T) {
	doc := `
[[status]]
id = "milking_medium"
label = "Milking (5-12 L/day)"
dm_required_pct = 4.0
protein_pct = 16.0
tdn_pct = 68.0
lactating = true

[[feed]]
id = "green_fodder"
name = "Green Fodder"
category = "roughage"
dm_pct = 20.0
cp_pct = 8.0
tdn_pct = 55.0
default_price_per_kg = 2.0
`
	path := filepath.Join(t.TempDir(), "catalog.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	c, err := Load(context.Background(), NewFileSource(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, ok := c.Status("milking_medium")
	if !ok || status.DMRequiredPct != 4.0 || !status.Lactating {
		t.Errorf("status not loaded correctly: %+v", status)
	}
	feed, ok := c.Feed("green_fodder")
	if !ok || feed.Category != Roughage || feed.TDNPct != 55 {
		t.Errorf("feed not loaded correctly: %+v", feed)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := Load(context.Background(), NewFileSource("/nonexistent/catalog.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTablesAreCopies(t *testing.T) {
	c, err := New(DefaultStatusProfiles(), DefaultFeedItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	feeds := c.Feeds()
	feeds[0].DefaultPricePerKg = 999

	reread, _ := c.Feed(feeds[0].ID)
	if reread.DefaultPricePerKg == 999 {
		t.Error("mutating the returned slice leaked into the catalog")
	}
}
