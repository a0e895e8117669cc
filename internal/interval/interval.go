// Package interval provides pure date-range arithmetic for the reservation
// engine and the reporting engine.  All functions treat their arguments as
// calendar dates: callers normalise to UTC midnight via Date before calling,
// so a "night" is always exactly 24 hours and daylight-saving shifts cannot
// skew the counts.
package interval

import (
    "errors"
    "time"
)

// ErrInvalidRange is returned by Nights when end is not strictly after start.
var ErrInvalidRange = errors.New("interval: end must be after start")

// Date truncates t to a UTC calendar date (midnight, UTC).
func Date(t time.Time) time.Time {
    y, m, d := t.UTC().Date()
    return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether the half-open ranges [aStart,aEnd) and
// [bStart,bEnd) intersect.  The half-open rule lets one booking check out on
// the day another checks in without counting as a conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
    return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Clip returns the intersection of [start,end) with [winStart,winEnd).
// The third result is false when the two ranges are disjoint.
func Clip(start, end, winStart, winEnd time.Time) (time.Time, time.Time, bool) {
    if !Overlaps(start, end, winStart, winEnd) {
        return time.Time{}, time.Time{}, false
    }
    if start.Before(winStart) {
        start = winStart
    }
    if end.After(winEnd) {
        end = winEnd
    }
    return start, end, true
}

// Nights returns the whole-day count between two calendar dates.  It fails
// with ErrInvalidRange when end is not strictly after start, which also
// rejects degenerate report windows.
func Nights(start, end time.Time) (int, error) {
    if !end.After(start) {
        return 0, ErrInvalidRange
    }
    return int(end.Sub(start) / (24 * time.Hour)), nil
}
