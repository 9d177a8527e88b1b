package catalog

// Compiled-in reference tables for the profiled dairy species. These are the
// startup defaults; deployments can replace them wholesale via a TOML file,
// a remote catalog endpoint, or the database.

// DefaultStatusProfiles returns the built-in physiological status table.
func DefaultStatusProfiles() []StatusProfile {
	return []StatusProfile{
		{ID: "calf", Label: "Calf (below 6 months)", DMRequiredPct: 2.5, ProteinPct: 18, TDNPct: 70},
		{ID: "growing", Label: "Growing (6-18 months)", DMRequiredPct: 3.0, ProteinPct: 14, TDNPct: 65},
		{ID: "heifer", Label: "Heifer", DMRequiredPct: 2.8, ProteinPct: 12, TDNPct: 62},
		{ID: "pregnant", Label: "Pregnant (last trimester)", DMRequiredPct: 3.2, ProteinPct: 14, TDNPct: 66},
		{ID: "milking_low", Label: "Milking (below 5 L/day)", DMRequiredPct: 3.5, ProteinPct: 14, TDNPct: 65, Lactating: true},
		{ID: "milking_medium", Label: "Milking (5-12 L/day)", DMRequiredPct: 4.0, ProteinPct: 16, TDNPct: 68, Lactating: true},
		{ID: "milking_high", Label: "Milking (above 12 L/day)", DMRequiredPct: 4.5, ProteinPct: 18, TDNPct: 70, Lactating: true},
		{ID: "dry", Label: "Dry", DMRequiredPct: 2.5, ProteinPct: 10, TDNPct: 60},
	}
}

// DefaultFeedItems returns the built-in feed ingredient table. Prices are
// indicative local-market rates per kg as-fed.
func DefaultFeedItems() []FeedItem {
	return []FeedItem{
		// Roughages
		{ID: "green_fodder", Name: "Green Fodder (Napier / Maize)", Category: Roughage, DMPct: 20, CPPct: 8, TDNPct: 55, DefaultPricePerKg: 2},
		{ID: "dry_fodder", Name: "Dry Fodder (Wheat / Paddy Straw)", Category: Roughage, DMPct: 90, CPPct: 4, TDNPct: 45, DefaultPricePerKg: 5},
		{ID: "silage", Name: "Maize Silage", Category: Roughage, DMPct: 30, CPPct: 8, TDNPct: 60, DefaultPricePerKg: 4},
		{ID: "legume_hay", Name: "Legume Hay (Berseem / Lucerne)", Category: Roughage, DMPct: 88, CPPct: 15, TDNPct: 55, DefaultPricePerKg: 10},

		// Concentrates
		{ID: "cattle_feed", Name: "Compound Cattle Feed", Category: Concentrate, DMPct: 90, CPPct: 20, TDNPct: 70, DefaultPricePerKg: 25},
		{ID: "wheat_bran", Name: "Wheat Bran", Category: Concentrate, DMPct: 88, CPPct: 14, TDNPct: 65, DefaultPricePerKg: 20},
		{ID: "maize_grain", Name: "Crushed Maize Grain", Category: Concentrate, DMPct: 88, CPPct: 9, TDNPct: 80, DefaultPricePerKg: 22},
		{ID: "cottonseed_cake", Name: "Cottonseed Cake", Category: Concentrate, DMPct: 92, CPPct: 24, TDNPct: 75, DefaultPricePerKg: 35},
		{ID: "groundnut_cake", Name: "Groundnut Cake", Category: Concentrate, DMPct: 92, CPPct: 45, TDNPct: 75, DefaultPricePerKg: 45},

		// Minerals
		{ID: "mineral_mix", Name: "Mineral Mixture", Category: Mineral, DMPct: 98, CPPct: 0, TDNPct: 0, DefaultPricePerKg: 80},
		{ID: "salt", Name: "Common Salt", Category: Mineral, DMPct: 96, CPPct: 0, TDNPct: 0, DefaultPricePerKg: 10},
	}
}
