package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateShipDates(t *testing.T) {
	tests := []struct {
		name          string
		numberOfShips int
		shipDay       int
		start         *YearMonth
		want          []string
	}{
		{
			name:          "single shipment",
			numberOfShips: 1,
			shipDay:       15,
			start:         &YearMonth{Year: 2025, Month: 7},
			want:          []string{"2025-07-15"},
		},
		{
			name:          "leap year end of month clamp",
			numberOfShips: 2,
			shipDay:       31,
			start:         &YearMonth{Year: 2024, Month: 1},
			want:          []string{"2024-01-31", "2024-02-29"},
		},
		{
			name:          "non leap february",
			numberOfShips: 2,
			shipDay:       30,
			start:         &YearMonth{Year: 2025, Month: 1},
			want:          []string{"2025-01-30", "2025-02-28"},
		},
		{
			name:          "year rollover",
			numberOfShips: 4,
			shipDay:       1,
			start:         &YearMonth{Year: 2025, Month: 11},
			want:          []string{"2025-11-01", "2025-12-01", "2026-01-01", "2026-02-01"},
		},
		{
			name:          "ships clamped to twelve",
			numberOfShips: 50,
			shipDay:       1,
			start:         &YearMonth{Year: 2025, Month: 1},
			want: []string{
				"2025-01-01", "2025-02-01", "2025-03-01", "2025-04-01",
				"2025-05-01", "2025-06-01", "2025-07-01", "2025-08-01",
				"2025-09-01", "2025-10-01", "2025-11-01", "2025-12-01",
			},
		},
		{
			name:          "ship day clamped up from zero",
			numberOfShips: 1,
			shipDay:       0,
			start:         &YearMonth{Year: 2025, Month: 3},
			want:          []string{"2025-03-01"},
		},
		{
			name:          "no start month yields placeholders",
			numberOfShips: 3,
			shipDay:       15,
			start:         nil,
			want:          []string{"", "", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateShipDates(tt.numberOfShips, tt.shipDay, tt.start)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateShipDatesMonotonic(t *testing.T) {
	// ISO dates compare lexicographically, so month/year rollover being
	// monotonic means each date sorts after the previous one.
	dates := GenerateShipDates(12, 28, &YearMonth{Year: 2025, Month: 9})
	for i := 1; i < len(dates); i++ {
		assert.Less(t, dates[i-1], dates[i])
	}
}
