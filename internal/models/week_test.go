package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWeekStartsOnMonday(t *testing.T) {
	anchors := []time.Time{
		time.Date(2024, 5, 6, 0, 0, 0, 0, time.Local),   // Monday
		time.Date(2024, 5, 8, 15, 30, 0, 0, time.Local), // Wednesday, mid-day
		time.Date(2024, 5, 11, 0, 0, 0, 0, time.Local),  // Saturday
	}
	for _, anchor := range anchors {
		week := ComputeWeek(anchor)
		assert.Equal(t, time.Monday, week[0].Weekday(), "anchor %s", anchor)
		assert.Equal(t, time.Sunday, week[6].Weekday(), "anchor %s", anchor)
		for i := 1; i < 7; i++ {
			assert.Equal(t, week[i-1].AddDate(0, 0, 1), week[i])
		}
	}
}

func TestComputeWeekSundayAnchorClosesWeek(t *testing.T) {
	// 2024-05-12 is a Sunday; it belongs to the week starting 2024-05-06.
	week := ComputeWeek(time.Date(2024, 5, 12, 10, 0, 0, 0, time.Local))
	assert.Equal(t, "2024-05-06", DayKey(week[0]))
	assert.Equal(t, "2024-05-12", DayKey(week[6]))
}

func TestComputeWeekWednesdayAnchor(t *testing.T) {
	week := ComputeWeek(time.Date(2024, 5, 8, 0, 0, 0, 0, time.Local))
	want := []string{"2024-05-06", "2024-05-07", "2024-05-08", "2024-05-09", "2024-05-10", "2024-05-11", "2024-05-12"}
	for i, day := range week {
		assert.Equal(t, want[i], DayKey(day))
	}
}

func TestComputeWeekDeterministic(t *testing.T) {
	anchor := time.Date(2024, 2, 29, 8, 0, 0, 0, time.Local)
	assert.Equal(t, ComputeWeek(anchor), ComputeWeek(anchor))
}

func TestDayAndHourIdentifiersRoundTrip(t *testing.T) {
	original := time.Date(2024, 5, 8, 14, 0, 0, 0, time.Local)
	day := DayKey(original)
	hour := HourKey(original.Hour())
	require.Equal(t, "2024-05-08", day)
	require.Equal(t, "14", hour)

	decoded, err := CellTime(day, hour)
	require.NoError(t, err)
	assert.Equal(t, day, DayKey(decoded))
	assert.Equal(t, hour, HourKey(decoded.Hour()))
	assert.Equal(t, 0, decoded.Minute())
	assert.Equal(t, 0, decoded.Second())
}

func TestHourKeyZeroPadded(t *testing.T) {
	assert.Equal(t, "07", HourKey(7))
	assert.Equal(t, "22", HourKey(22))
}

func TestCellTimeRejectsMalformedIdentifiers(t *testing.T) {
	_, err := CellTime("08-05-2024", "09")
	assert.Error(t, err)
	_, err = CellTime("2024-05-08", "9a")
	assert.Error(t, err)
	_, err = CellTime("2024-05-08", "25")
	assert.Error(t, err)
}

func TestPlannerHours(t *testing.T) {
	hours := PlannerHours()
	require.Len(t, hours, 16)
	assert.Equal(t, "07", hours[0])
	assert.Equal(t, "22", hours[len(hours)-1])
}

func TestCellKey(t *testing.T) {
	assert.Equal(t, "2024-05-08T09", CellKey("2024-05-08", "09"))
}
