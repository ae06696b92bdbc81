package domain

import "time"

// SeedCategory classifies a seed as fruit or vegetable
type SeedCategory string

// Supported seed categories
const (
	CategoryFruit     SeedCategory = "Fruit"
	CategoryVegetable SeedCategory = "Vegetable"
)

// Valid reports whether the category is one of the supported values
func (c SeedCategory) Valid() bool {
	return c == CategoryFruit || c == CategoryVegetable
}

// Seed represents a catalog entry describing a plantable item and its
// growth characteristics. Growth durations are typed integers; legacy
// "30-60 days" strings are normalized at the write boundary, never here.
type Seed struct {
	ID               string       `json:"id"`
	UserID           string       `json:"user_id"`
	Name             string       `json:"name"`
	Category         SeedCategory `json:"category"`
	Quantity         int          `json:"quantity"`
	MinGrowthDays    int          `json:"min_growth_days"`
	MaxGrowthDays    int          `json:"max_growth_days"`
	PreferredWeather string       `json:"preferred_weather"`
	Info             string       `json:"info"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// HarvestWindow is the inclusive date range during which a planted seed is
// expected to become harvestable. Derived, never stored.
type HarvestWindow struct {
	Earliest Day `json:"earliest"`
	Latest   Day `json:"latest"`
}

// Contains reports whether day d falls inside the window (inclusive).
func (w HarvestWindow) Contains(d Day) bool {
	return !d.Before(w.Earliest) && !d.After(w.Latest)
}

// String renders the window as "YYYY-MM-DD - YYYY-MM-DD".
func (w HarvestWindow) String() string {
	return w.Earliest.String() + " - " + w.Latest.String()
}
