package seed

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mlavell/sproutlog/internal/domain"
)

// Legacy seed data stored growth durations as free-text, either a range
// ("60-90 days") or a single value ("90 days"). New writes carry typed
// integers; this parser exists so imported legacy strings can still be
// accepted at the write boundary.
var (
	growthRangePattern  = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)`)
	growthSinglePattern = regexp.MustCompile(`^(\d+)`)
)

// ParseGrowthRange converts a legacy growth duration string into typed
// min/max day counts. A single value yields min == max.
func ParseGrowthRange(raw string) (int, int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, 0, fmt.Errorf("%w: empty growth duration", domain.ErrInvalidGrowthRange)
	}

	if m := growthRangePattern.FindStringSubmatch(s); m != nil {
		minDays, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidGrowthRange, raw)
		}
		maxDays, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidGrowthRange, raw)
		}
		if minDays > maxDays {
			return 0, 0, fmt.Errorf("%w: min %d exceeds max %d", domain.ErrInvalidGrowthRange, minDays, maxDays)
		}
		return minDays, maxDays, nil
	}

	if m := growthSinglePattern.FindStringSubmatch(s); m != nil {
		days, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidGrowthRange, raw)
		}
		return days, days, nil
	}

	return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidGrowthRange, raw)
}
