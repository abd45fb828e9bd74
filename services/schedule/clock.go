package schedule

import (
	"fmt"
	"time"
)

// SlotStepMin is the stepping grid granularity for candidate slots.
const SlotStepMin = 15

// DefaultDurationMin applies when an availability query names no service.
const DefaultDurationMin = 30

// ParseDay parses a YYYY-MM-DD string as a calendar day in loc.
func ParseDay(date string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", date, err)
	}
	return day, nil
}

// TimeOfDayOn resolves a wall-clock "HH:MM" onto the given day in loc.
// The result is the absolute instant meaning that local time on that
// date, whatever the UTC offset is that day.
func TimeOfDayOn(day time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time of day %q: %w", hhmm, err)
	}
	d := day.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// DayBoundsOn returns local midnight on the given day and local
// midnight on the next day. Using time.Date keeps the bounds correct on
// DST-transition days (a local day is not always 24 hours).
func DayBoundsOn(day time.Time, loc *time.Location) (time.Time, time.Time) {
	d := day.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	end := time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, loc)
	return start, end
}

// Overlaps reports whether [aStart,aEnd) and [bStart,bEnd) intersect.
// Half-open: boundary touch is not an overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// SlotWindow is one candidate window on the stepping grid.
type SlotWindow struct {
	Start time.Time
	End   time.Time
}

// BuildSlotGrid produces every slot of the given duration starting at
// windowStart, windowStart+step, ... whose end fits inside windowEnd.
// Generation stops at the first candidate whose end would exceed the
// window. Pure function of its inputs.
func BuildSlotGrid(windowStart, windowEnd time.Time, step, duration time.Duration) []SlotWindow {
	var slots []SlotWindow
	for cursor := windowStart; ; cursor = cursor.Add(step) {
		end := cursor.Add(duration)
		if end.After(windowEnd) {
			break
		}
		slots = append(slots, SlotWindow{Start: cursor, End: end})
	}
	return slots
}
