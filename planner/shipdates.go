package planner

import (
	"fmt"
	"time"
)

// YearMonth identifies the calendar month the first shipment lands in.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-based
}

// GenerateShipDates produces one ISO YYYY-MM-DD date per shipment, walking
// forward one calendar month at a time from start. The day of month is
// clamped to the last day of each month, so shipDay=31 lands on Feb 29 in a
// leap year. A nil start returns empty placeholders for the caller to fill
// in manually. Inputs are clamped, never rejected.
func GenerateShipDates(numberOfShips, shipDay int, start *YearMonth) []string {
	numberOfShips = clamp(numberOfShips, 1, 12)
	shipDay = clamp(shipDay, 1, 31)

	dates := make([]string, numberOfShips)
	if start == nil {
		return dates
	}

	startMonth := clamp(start.Month, 1, 12)
	for i := range dates {
		monthOffset := (startMonth - 1) + i
		year := start.Year + monthOffset/12
		month := ((monthOffset % 12) + 12) % 12 // 0-based, always non-negative

		day := shipDay
		if last := daysInMonth(year, month+1); day > last {
			day = last
		}
		dates[i] = fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
	}
	return dates
}

// daysInMonth returns the day count of the given 1-based month.
func daysInMonth(year, month int) int {
	// day 0 of the following month normalizes to the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
