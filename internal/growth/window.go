// Package growth computes harvest windows from planting dates and seed
// growth durations. All functions are pure: identical inputs always produce
// identical outputs, and nothing here reads the wall clock.
package growth

import (
	"fmt"

	"github.com/mlavell/sproutlog/internal/domain"
)

// Window computes the inclusive harvest window for a seed planted on the
// given day. The earliest bound is planted + minDays and the latest is
// planted + maxDays, both with full calendar arithmetic (month lengths,
// year rollover, leap years).
//
// minDays == maxDays yields a single-day window. minDays == 0 means harvest
// can begin on the planting day itself.
func Window(planted domain.Day, minDays, maxDays int) (domain.HarvestWindow, error) {
	if planted.IsZero() {
		return domain.HarvestWindow{}, fmt.Errorf("%w: planting date is not set", domain.ErrInvalidDate)
	}
	if minDays < 0 || maxDays < 0 {
		return domain.HarvestWindow{}, fmt.Errorf("%w: growth days must be non-negative (min=%d, max=%d)", domain.ErrInvalidGrowthRange, minDays, maxDays)
	}
	if minDays > maxDays {
		return domain.HarvestWindow{}, fmt.Errorf("%w: min %d exceeds max %d", domain.ErrInvalidGrowthRange, minDays, maxDays)
	}

	return domain.HarvestWindow{
		Earliest: planted.AddDays(minDays),
		Latest:   planted.AddDays(maxDays),
	}, nil
}

// WindowFromString is Window with the planting day supplied in canonical
// "YYYY-MM-DD" form. Callers holding raw date strings (journal entries,
// planting snapshots) use this instead of parsing themselves.
func WindowFromString(plantedDate string, minDays, maxDays int) (domain.HarvestWindow, error) {
	planted, err := domain.ParseDay(plantedDate)
	if err != nil {
		return domain.HarvestWindow{}, err
	}
	return Window(planted, minDays, maxDays)
}

// WindowForSeed computes the harvest window for a seed planted on the given
// date using the seed's stored growth range.
func WindowForSeed(plantedDate string, seed domain.Seed) (domain.HarvestWindow, error) {
	return WindowFromString(plantedDate, seed.MinGrowthDays, seed.MaxGrowthDays)
}
