// Package dates implements the calendar-date arithmetic bookings are built
// on. A stay is the half-open range [checkIn, checkOut): the checkout day is
// not occupied, so back-to-back stays sharing a boundary date never collide.
package dates

import (
	"math"
	"strings"
	"time"

	"stayhub/internal/pkg/errs"
)

// Layout is the canonical wire format for stay dates.
const Layout = time.DateOnly

// Parse reads a calendar date. RFC3339 timestamps are tolerated for legacy
// clients; only the date part is kept.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errs.New("empty date")
	}

	if t, err := time.Parse(Layout, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errs.Wrap(err, "unparseable date")
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// Overlaps reports whether two half-open ranges share at least one night.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Nights counts the nights between check-in and check-out. Rounding absorbs
// daylight-saving offsets when inputs carry a time of day.
func Nights(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Hours() / 24))
}
