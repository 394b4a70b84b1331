package models

import (
	"fmt"
	"strconv"
	"time"
)

// Planner boards show the hours 07:00 through 22:00.
const (
	PlannerFirstHour = 7
	PlannerLastHour  = 22
)

// DayKeyLayout is the canonical, lexicographically sortable day identifier format.
const DayKeyLayout = "2006-01-02"

// ComputeWeek returns the seven days of the week containing anchor, Monday first.
// A Sunday anchor belongs to the week it closes, not the week it would open.
func ComputeWeek(anchor time.Time) [7]time.Time {
	offset := (int(anchor.Weekday()) + 6) % 7
	monday := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location()).
		AddDate(0, 0, -offset)

	var week [7]time.Time
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}

// DayKey renders the local calendar date of t as a planner day identifier.
// Two times map to the same key iff they fall on the same local calendar day.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// HourKey renders an hour of day as a zero-padded two-digit identifier.
func HourKey(hour int) string {
	return fmt.Sprintf("%02d", hour)
}

// CellKey combines day and hour identifiers into a single grid-cell address.
func CellKey(dayKey, hourKey string) string {
	return dayKey + "T" + hourKey
}

// CellTime decodes a (day, hour) identifier pair back into a local timestamp with
// minutes and seconds zeroed. It is the inverse of DayKey/HourKey, so re-encoding
// the result reproduces the original identifiers.
func CellTime(dayKey, hourKey string) (time.Time, error) {
	day, err := time.ParseInLocation(DayKeyLayout, dayKey, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day identifier %q: %w", dayKey, err)
	}
	hour, err := strconv.Atoi(hourKey)
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hour identifier %q", hourKey)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.Local), nil
}

// PlannerHours lists the hour identifiers of the visible board rows.
func PlannerHours() []string {
	hours := make([]string, 0, PlannerLastHour-PlannerFirstHour+1)
	for h := PlannerFirstHour; h <= PlannerLastHour; h++ {
		hours = append(hours, HourKey(h))
	}
	return hours
}
