package calendar

import (
	"sort"

	"github.com/mlavell/sproutlog/internal/domain"
	"github.com/mlavell/sproutlog/internal/growth"
)

// Annotate builds the per-day display annotation map for a snapshot of
// plantings and the seed catalog that resolves them.
//
// Every planting date is marked as a planting-event day, even when none of
// its seed ids resolve. Each resolvable seed contributes its name to every
// day of its harvest window (inclusive, deduplicated). The selected day, if
// any, is overlaid last and gets an entry even when nothing else touches it.
//
// The result is a total rebuild: calling Annotate twice with identical
// inputs produces structurally identical output. Bad records are collected
// in the Skipped list instead of aborting the pass.
func Annotate(plantings domain.PlantingSet, catalog map[string]domain.Seed, selectedDate string) *domain.CalendarView {
	view := &domain.CalendarView{
		Days: make(map[string]*domain.DayAnnotation),
	}

	// Per-day seed-name sets, materialized into sorted slices at the end.
	harvestNames := make(map[string]map[string]struct{})

	dayFor := func(date string) *domain.DayAnnotation {
		ann, ok := view.Days[date]
		if !ok {
			ann = &domain.DayAnnotation{Date: date}
			view.Days[date] = ann
		}
		return ann
	}

	for date, seedIDs := range plantings {
		planted, err := domain.ParseDay(date)
		if err != nil {
			view.Skipped = append(view.Skipped, domain.SkippedEntry{
				Date:   date,
				Reason: domain.SkipReasonInvalidDate,
			})
			continue
		}

		ann := dayFor(planted.String())
		ann.HasPlanting = true

		for _, seedID := range seedIDs {
			ann.PlantedSeedIDs = appendUnique(ann.PlantedSeedIDs, seedID)

			seed, ok := catalog[seedID]
			if !ok {
				// Policy: the day stays marked as a planting event, the
				// seed just contributes no harvest window.
				view.Skipped = append(view.Skipped, domain.SkippedEntry{
					Date:   planted.String(),
					SeedID: seedID,
					Reason: domain.SkipReasonUnresolvedSeed,
				})
				continue
			}

			window, err := growth.Window(planted, seed.MinGrowthDays, seed.MaxGrowthDays)
			if err != nil {
				view.Skipped = append(view.Skipped, domain.SkippedEntry{
					Date:   planted.String(),
					SeedID: seedID,
					Reason: domain.SkipReasonInvalidGrowthRange,
				})
				continue
			}

			for d := window.Earliest; !d.After(window.Latest); d = d.AddDays(1) {
				key := d.String()
				dayFor(key)
				names, ok := harvestNames[key]
				if !ok {
					names = make(map[string]struct{})
					harvestNames[key] = names
				}
				names[seed.Name] = struct{}{}
			}
		}
	}

	if selectedDate != "" {
		selected, err := domain.ParseDay(selectedDate)
		if err != nil {
			view.Skipped = append(view.Skipped, domain.SkippedEntry{
				Date:   selectedDate,
				Reason: domain.SkipReasonInvalidDate,
			})
		} else {
			dayFor(selected.String()).Selected = true
		}
	}

	for date, ann := range view.Days {
		if names, ok := harvestNames[date]; ok {
			ann.HarvestSeeds = make([]string, 0, len(names))
			for name := range names {
				ann.HarvestSeeds = append(ann.HarvestSeeds, name)
			}
			sort.Strings(ann.HarvestSeeds)
		}
		sort.Strings(ann.PlantedSeedIDs)

		if ann.HasPlanting {
			ann.Markers = append(ann.Markers, domain.MarkerPlanting)
		}
		if len(ann.HarvestSeeds) > 0 {
			ann.Markers = append(ann.Markers, domain.MarkerHarvest)
		}
	}

	sort.Slice(view.Skipped, func(i, j int) bool {
		a, b := view.Skipped[i], view.Skipped[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.SeedID != b.SeedID {
			return a.SeedID < b.SeedID
		}
		return a.Reason < b.Reason
	})

	return view
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
