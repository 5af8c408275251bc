package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
)

// After projects a timestamp forward by the Duration with calendar-correct
// month semantics.
//
// The seconds component is added raw first; it covers every exact unit from
// seconds through weeks regardless of month length and preserves whatever
// sub-second precision the input carries. The months component is then applied
// as a calendar shift: the target month index carries into the year in either
// direction, and when the day-of-month does not exist in the target month
// (Jan 31 plus one month) it clamps to the last valid day of that month rather
// than rolling into the next one.
//
// The location of the input passes through untouched.
func (d Duration) After(t time.Time) time.Time {
	shifted := t.Add(time.Duration(d.seconds) * time.Second)
	if d.months == 0 {
		return shifted
	}

	monthIndex := int64(shifted.Month()) - 1 + d.months
	year := int64(shifted.Year()) + floorDiv(monthIndex, monthsPerYear)
	month := time.Month(floorMod(monthIndex, monthsPerYear) + 1)

	day := shifted.Day()
	if last := lastDayOfMonth(int(year), month); day > last {
		day = last
	}

	return time.Date(int(year), month, day,
		shifted.Hour(), shifted.Minute(), shifted.Second(), shifted.Nanosecond(),
		shifted.Location())
}

// Before projects a timestamp backward by the Duration. It is defined as
// After with the negated Duration, so the two directions can never diverge in
// carry or clamping behavior.
func (d Duration) Before(t time.Time) time.Time {
	return d.Neg().After(t)
}

// NewTimestamp builds a timestamp from explicit calendar fields in the given
// location, rejecting field combinations that don't name a real calendar date.
// The projection never needs this check because it clamps first; it guards
// external callers handing in raw fields.
func NewTimestamp(year int, month time.Month, day, hour, minute, second int, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if !ValidDate(year, month, day) ||
		hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return time.Time{}, errs.ErrCalendarOutOfBounds
	}
	return time.Date(year, month, day, hour, minute, second, 0, loc), nil
}

// ValidDate reports whether the (year, month, day) triple names a real date in
// the proleptic Gregorian calendar
func ValidDate(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December {
		return false
	}
	return day >= 1 && day <= lastDayOfMonth(year, month)
}

// lastDayOfMonth relies on time.Date normalizing day zero of the following
// month to the last day of this one
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// floorDiv divides rounding toward negative infinity, so month carries work
// for negative shifts
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the non-negative remainder matching floorDiv
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
