package schedule

import (
	"testing"
	"time"

	"inmomarket/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-08-26 is a Wednesday.
var wednesday = time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)

func mondayMorning() []entity.AvailabilityWindow {
	return []entity.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "10:00:00", EndTime: "12:00:00"},
	}
}

func TestUpcomingDates_EmptyWindows(t *testing.T) {
	assert.Empty(t, UpcomingDates(wednesday, nil))
	assert.Empty(t, UpcomingDates(wednesday, []entity.AvailabilityWindow{}))
}

func TestUpcomingDates_FourMondaysWithinHorizon(t *testing.T) {
	dates := UpcomingDates(wednesday, mondayMorning())

	require.Len(t, dates, 4)
	for i, d := range dates {
		assert.Equal(t, time.Monday, d.Weekday(), "date %d", i)
	}
	// First upcoming Monday after Wednesday 2026-08-26 is 2026-08-31.
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC), dates[3])
}

func TestUpcomingDates_IncludesReferenceDay(t *testing.T) {
	windows := []entity.AvailabilityWindow{
		{DayOfWeek: 3, StartTime: "14:00:00", EndTime: "16:00:00"},
	}

	dates := UpcomingDates(wednesday, windows)

	require.Len(t, dates, 4)
	assert.Equal(t, time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), dates[0])
}

func TestUpcomingDates_MultipleWeekdays(t *testing.T) {
	windows := []entity.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "10:00:00", EndTime: "12:00:00"},
		{DayOfWeek: 6, StartTime: "09:00:00", EndTime: "11:00:00"},
	}

	dates := UpcomingDates(wednesday, windows)

	// Still capped at four even though eight candidates exist in the
	// 28-day horizon.
	require.Len(t, dates, 4)
	assert.Equal(t, time.Saturday, dates[0].Weekday())
	assert.Equal(t, time.Monday, dates[1].Weekday())
	assert.True(t, dates[0].Before(dates[1]))
}

func TestDates_Restartable(t *testing.T) {
	seq := Dates(wednesday, mondayMorning())

	first := make([]time.Time, 0, 4)
	for d := range seq {
		first = append(first, d)
	}

	second := make([]time.Time, 0, 4)
	for d := range seq {
		second = append(second, d)
	}

	assert.Equal(t, first, second)
}

func TestDates_EarlyBreak(t *testing.T) {
	var got []time.Time
	for d := range Dates(wednesday, mondayMorning()) {
		got = append(got, d)

		break
	}

	require.Len(t, got, 1)
	assert.Equal(t, time.Monday, got[0].Weekday())
}

func TestWindowsOn_FiltersByWeekday(t *testing.T) {
	windows := []entity.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "10:00:00", EndTime: "12:00:00"},
		{DayOfWeek: 2, StartTime: "14:00:00", EndTime: "16:00:00"},
		{DayOfWeek: 2, StartTime: "18:00:00", EndTime: "19:00:00"},
	}
	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	matched := WindowsOn(tuesday, windows)

	require.Len(t, matched, 2)
	assert.Equal(t, "14:00:00", matched[0].StartTime)
	assert.Equal(t, "18:00:00", matched[1].StartTime)
}

func TestCovers(t *testing.T) {
	windows := []entity.AvailabilityWindow{
		{DayOfWeek: 2, StartTime: "14:00:00", EndTime: "16:00:00"},
	}

	// 2026-09-01 is a Tuesday.
	assert.True(t, Covers(windows, "2026-09-01", "14:00:00"))
	assert.True(t, Covers(windows, "2026-09-01", "15:59:59"))
	assert.True(t, Covers(windows, "2026-09-01", "14:30"))

	// End is exclusive, wrong weekday and malformed input all miss.
	assert.False(t, Covers(windows, "2026-09-01", "16:00:00"))
	assert.False(t, Covers(windows, "2026-09-02", "14:00:00"))
	assert.False(t, Covers(windows, "not-a-date", "14:00:00"))
	assert.False(t, Covers(windows, "2026-09-01", "afternoon"))
	assert.False(t, Covers(nil, "2026-09-01", "14:00:00"))
}

func TestISOWeekday(t *testing.T) {
	// 2026-08-30 is a Sunday, 2026-08-31 a Monday.
	assert.Equal(t, 7, ISOWeekday(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, ISOWeekday(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)))
}
