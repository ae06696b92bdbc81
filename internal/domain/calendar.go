package domain

// Marker kinds attached to day annotations. The presentation layer maps
// these to colors (the mobile client renders planting dots red and the
// selected day green).
const (
	MarkerPlanting = "planting"
	MarkerHarvest  = "harvest"
)

// Skip reasons recorded when an input entry cannot contribute to the
// calendar. One bad record never aborts the whole annotation pass.
const (
	SkipReasonInvalidDate        = "invalid_date"
	SkipReasonInvalidGrowthRange = "invalid_growth_range"
	SkipReasonUnresolvedSeed     = "unresolved_seed"
)

// DayAnnotation is derived display metadata for one calendar day. It is
// rebuilt wholesale whenever plantings, the seed catalog or the selected
// day change; never patched in place.
type DayAnnotation struct {
	Date           string   `json:"date"`
	HasPlanting    bool     `json:"has_planting"`
	PlantedSeedIDs []string `json:"planted_seed_ids,omitempty"`
	HarvestSeeds   []string `json:"harvest_seeds,omitempty"` // seed names, deduplicated
	Selected       bool     `json:"selected"`
	Markers        []string `json:"markers,omitempty"`
}

// SkippedEntry reports an input record that could not be fully processed.
type SkippedEntry struct {
	Date   string `json:"date"`
	SeedID string `json:"seed_id,omitempty"`
	Reason string `json:"reason"`
}

// CalendarView is the full annotation map covering every day touched by a
// planting event or harvest window, plus the selected day if distinct.
type CalendarView struct {
	Days    map[string]*DayAnnotation `json:"days"`
	Skipped []SkippedEntry            `json:"skipped,omitempty"`
}
