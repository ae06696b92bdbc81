package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlavell/sproutlog/internal/domain"
)

func TestParseGrowthRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin int
		wantMax int
		wantErr error
	}{
		{name: "range with days suffix", input: "60-90 days", wantMin: 60, wantMax: 90},
		{name: "range without suffix", input: "30-45", wantMin: 30, wantMax: 45},
		{name: "range with spaces around dash", input: "60 - 90 days", wantMin: 60, wantMax: 90},
		{name: "single value with suffix", input: "90 days", wantMin: 90, wantMax: 90},
		{name: "single value bare", input: "75", wantMin: 75, wantMax: 75},
		{name: "leading whitespace", input: "  30-60 days", wantMin: 30, wantMax: 60},
		{name: "zero minimum", input: "0-14 days", wantMin: 0, wantMax: 14},
		{name: "empty string", input: "", wantErr: domain.ErrInvalidGrowthRange},
		{name: "whitespace only", input: "   ", wantErr: domain.ErrInvalidGrowthRange},
		{name: "no digits", input: "about two months", wantErr: domain.ErrInvalidGrowthRange},
		{name: "inverted range", input: "90-60 days", wantErr: domain.ErrInvalidGrowthRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minDays, maxDays, err := ParseGrowthRange(tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMin, minDays)
			assert.Equal(t, tt.wantMax, maxDays)
		})
	}
}
