package domain

// WikiEntry is a read-only reference article about a seed variety. Entries
// are shared across users and seeded from the fruit and vegetable reference
// tables.
type WikiEntry struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Category         SeedCategory `json:"category"`
	MinGrowthDays    int          `json:"min_growth_days"`
	MaxGrowthDays    int          `json:"max_growth_days"`
	PreferredWeather string       `json:"preferred_weather"`
	Info             string       `json:"info"`
	ImageURL         string       `json:"image_url,omitempty"`
}
