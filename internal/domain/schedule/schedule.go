// Package schedule derives concrete visitable dates and times from a
// publication's recurring weekly availability windows.
package schedule

import (
	"iter"
	"time"

	"inmomarket/internal/domain/entity"
)

const (
	// horizonDays bounds the search for upcoming dates to the next 28
	// calendar days, starting at the reference day itself.
	horizonDays = 28

	// maxDates caps how many concrete dates are offered to a visitor.
	maxDates = 4
)

// ISOWeekday returns the ISO 8601 weekday number for t: 1 for Monday
// through 7 for Sunday.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}

	return wd
}

// Dates returns a lazy, restartable sequence of concrete calendar
// dates on or after from whose weekday matches any of the windows.
// The sequence is finite: it stops after four matches or once the
// 28-day horizon is exhausted, whichever comes first. Yielded times
// are midnight in from's location.
func Dates(from time.Time, windows []entity.AvailabilityWindow) iter.Seq[time.Time] {
	days := make(map[int]bool, len(windows))
	for _, w := range windows {
		days[w.DayOfWeek] = true
	}

	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())

	return func(yield func(time.Time) bool) {
		found := 0
		for offset := 0; offset < horizonDays && found < maxDates; offset++ {
			candidate := day.AddDate(0, 0, offset)
			if !days[ISOWeekday(candidate)] {
				continue
			}
			if !yield(candidate) {
				return
			}
			found++
		}
	}
}

// UpcomingDates collects the sequence produced by Dates into a slice.
func UpcomingDates(from time.Time, windows []entity.AvailabilityWindow) []time.Time {
	var dates []time.Time
	for d := range Dates(from, windows) {
		dates = append(dates, d)
	}

	return dates
}

// WindowsOn filters windows down to those whose weekday matches date.
// These are the selectable time ranges once a visitor picks a date.
func WindowsOn(date time.Time, windows []entity.AvailabilityWindow) []entity.AvailabilityWindow {
	weekday := ISOWeekday(date)

	var matched []entity.AvailabilityWindow
	for _, w := range windows {
		if w.DayOfWeek == weekday {
			matched = append(matched, w)
		}
	}

	return matched
}

// Covers reports whether the given calendar date ("2006-01-02") and
// time of day ("15:04:05", "15:04" accepted) fall inside any of the
// windows. The window end is exclusive: a visit may start at the
// window's start time but not at its end time.
func Covers(windows []entity.AvailabilityWindow, visitDate, visitTime string) bool {
	date, err := time.Parse("2006-01-02", visitDate)
	if err != nil {
		return false
	}

	sec, ok := parseTimeOfDay(visitTime)
	if !ok {
		return false
	}

	for _, w := range WindowsOn(date, windows) {
		start, startOK := parseTimeOfDay(w.StartTime)
		end, endOK := parseTimeOfDay(w.EndTime)
		if !startOK || !endOK {
			continue
		}
		if sec >= start && sec < end {
			return true
		}
	}

	return false
}

// parseTimeOfDay converts "15:04:05" or "15:04" into seconds since
// midnight.
func parseTimeOfDay(s string) (int, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*3600 + t.Minute()*60 + t.Second(), true
		}
	}

	return 0, false
}
