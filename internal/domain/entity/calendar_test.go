package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestAfter(t *testing.T) {
	t.Run("Seconds shift exactly", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"days": 2, "hours": 3})
		base := time.Date(2000, time.March, 15, 10, 30, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2000, time.March, 17, 13, 30, 0, 0, time.UTC), d.After(base))
	})

	t.Run("Month shift clamps to the last valid day", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"months": 1})
		base := time.Date(2000, time.January, 31, 3, 45, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2000, time.February, 29, 3, 45, 0, 0, time.UTC), d.After(base))
	})

	t.Run("Month shift carries across year boundaries", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"months": 14})
		base := time.Date(2000, time.November, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2002, time.January, 15, 0, 0, 0, 0, time.UTC), d.After(base))
	})

	t.Run("Negative month shift carries backward across years", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"months": -14})
		base := time.Date(2000, time.March, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(1999, time.January, 15, 0, 0, 0, 0, time.UTC), d.After(base))
	})

	t.Run("Seconds apply before the month shift", func(t *testing.T) {
		// One day lands on Jan 31 first, then the month shift clamps to Feb 29
		d := mustDuration(t, map[string]int64{"days": 1, "months": 1})
		base := time.Date(2000, time.January, 30, 23, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2000, time.February, 29, 23, 0, 0, 0, time.UTC), d.After(base))
	})

	t.Run("Zero duration is the identity including nanoseconds", func(t *testing.T) {
		base := time.Date(2000, time.June, 1, 12, 0, 0, 123456789, time.UTC)
		assert.Equal(t, base, Duration{}.After(base))
	})

	t.Run("Location passes through", func(t *testing.T) {
		zone := time.FixedZone("UTC+3", 3*3600)
		d := mustDuration(t, map[string]int64{"months": 2})
		shifted := d.After(time.Date(2000, time.May, 10, 8, 0, 0, 0, zone))
		assert.Equal(t, zone, shifted.Location())
		assert.Equal(t, time.Date(2000, time.July, 10, 8, 0, 0, 0, zone), shifted)
	})
}

func TestBefore(t *testing.T) {
	t.Run("Matches After with the negated duration", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"months": 3, "days": 5})
		base := time.Date(2001, time.August, 20, 6, 15, 30, 0, time.UTC)
		assert.Equal(t, d.Neg().After(base), d.Before(base))
	})

	t.Run("Backward month shift clamps as well", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"months": 1})
		base := time.Date(2000, time.March, 31, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC), d.Before(base))
	})

	t.Run("Round trip is exact away from month ends", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"months": 2, "days": 10})
		base := time.Date(2001, time.August, 20, 6, 15, 30, 0, time.UTC)
		assert.Equal(t, base, d.After(d.Before(base)))
		assert.Equal(t, base, d.Before(d.After(base)))
	})

	t.Run("Clamping makes the round trip land on the clamped day", func(t *testing.T) {
		// Mar 31 back one month clamps to Feb 29; forward one month from
		// there is Mar 29, not the starting day
		d := mustDuration(t, map[string]int64{"months": 1})
		base := time.Date(2000, time.March, 31, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2000, time.March, 29, 0, 0, 0, 0, time.UTC), d.After(d.Before(base)))
	})
}

func TestNewTimestamp(t *testing.T) {
	t.Run("Builds a valid timestamp", func(t *testing.T) {
		ts, err := NewTimestamp(2000, time.February, 29, 23, 59, 59, time.UTC)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2000, time.February, 29, 23, 59, 59, 0, time.UTC), ts)
	})

	t.Run("Nil location defaults to UTC", func(t *testing.T) {
		ts, err := NewTimestamp(2000, time.June, 1, 0, 0, 0, nil)
		assert.NoError(t, err)
		assert.Equal(t, time.UTC, ts.Location())
	})

	t.Run("Rejects impossible fields", func(t *testing.T) {
		testCases := []struct {
			name   string
			year   int
			month  time.Month
			day    int
			hour   int
			minute int
			second int
		}{
			{"day past end of month", 2001, time.February, 29, 0, 0, 0},
			{"day zero", 2000, time.June, 0, 0, 0, 0},
			{"month out of range", 2000, time.Month(13), 1, 0, 0, 0},
			{"hour out of range", 2000, time.June, 1, 24, 0, 0},
			{"minute out of range", 2000, time.June, 1, 0, 60, 0},
			{"second out of range", 2000, time.June, 1, 0, 0, 60},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewTimestamp(tc.year, tc.month, tc.day, tc.hour, tc.minute, tc.second, time.UTC)
				assert.ErrorIs(t, err, errs.ErrCalendarOutOfBounds)
			})
		}
	})
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate(2000, time.February, 29))
	assert.True(t, ValidDate(2024, time.February, 29))
	assert.False(t, ValidDate(1900, time.February, 29))
	assert.False(t, ValidDate(2000, time.April, 31))
	assert.False(t, ValidDate(2000, time.Month(0), 1))
}
