package entity

import (
	"encoding/json"
	"testing"

	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func mustDuration(t *testing.T, quantities map[string]int64) Duration {
	t.Helper()
	d, err := NewDuration(quantities)
	assert.NoError(t, err)
	return d
}

func TestNewDuration(t *testing.T) {
	t.Run("Sums quantities into the matching basis", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{
			"hours":   2,
			"minutes": 30,
			"years":   1,
			"months":  2,
		})
		assert.Equal(t, int64(2*3600+30*60), d.Seconds())
		assert.Equal(t, int64(14), d.Months())
	})

	t.Run("Accepts singular aliases", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"hour": 1, "month": 1})
		assert.Equal(t, int64(3600), d.Seconds())
		assert.Equal(t, int64(1), d.Months())
	})

	t.Run("Empty mapping yields zero", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{})
		assert.True(t, d.IsZero())
	})

	t.Run("Negative quantities are allowed", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"days": -2, "months": -1})
		assert.Equal(t, int64(-172800), d.Seconds())
		assert.Equal(t, int64(-1), d.Months())
	})

	t.Run("Unknown unit fails construction", func(t *testing.T) {
		_, err := NewDuration(map[string]int64{"jiffies": 3})
		assert.ErrorIs(t, err, errs.ErrUnknownUnit)
	})
}

func TestFromComponents(t *testing.T) {
	// The canonical two-integer form round-trips exactly for any values
	testCases := []struct {
		seconds int64
		months  int64
	}{
		{0, 0},
		{1, 0},
		{0, 1},
		{-1, -1},
		{86400, 14},
		{-31536000, 120},
	}

	for _, tc := range testCases {
		d := FromComponents(tc.seconds, tc.months)
		assert.Equal(t, tc.seconds, d.Seconds())
		assert.Equal(t, tc.months, d.Months())
	}
}

func TestComponent(t *testing.T) {
	d := FromComponents(42, 7)

	seconds, err := d.Component(BasisSeconds)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), seconds)

	months, err := d.Component(BasisMonths)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), months)

	_, err = d.Component(Basis("weeks"))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestArithmetic(t *testing.T) {
	a := FromComponents(100, 3)
	b := FromComponents(40, 1)

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, FromComponents(140, 4), a.Add(b))
	})

	t.Run("Sub", func(t *testing.T) {
		assert.Equal(t, FromComponents(60, 2), a.Sub(b))
	})

	t.Run("Neg", func(t *testing.T) {
		assert.Equal(t, FromComponents(-100, -3), a.Neg())
		assert.Equal(t, a, a.Neg().Neg())
	})

	t.Run("Mul", func(t *testing.T) {
		assert.Equal(t, FromComponents(300, 9), a.Mul(3))
		assert.Equal(t, FromComponents(-100, -3), a.Mul(-1))
	})

	t.Run("Div truncates toward zero per component", func(t *testing.T) {
		quotient, err := FromComponents(7, 5).Div(2)
		assert.NoError(t, err)
		assert.Equal(t, FromComponents(3, 2), quotient)

		quotient, err = FromComponents(-7, -5).Div(2)
		assert.NoError(t, err)
		assert.Equal(t, FromComponents(-3, -2), quotient)
	})

	t.Run("Div by zero fails", func(t *testing.T) {
		_, err := a.Div(0)
		assert.ErrorIs(t, err, errs.ErrInvalidOperand)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("One year becomes 365 days of seconds", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"years": 1})
		normalized, err := d.Normalize(NormalizationStandard)
		assert.NoError(t, err)
		assert.Equal(t, int64(31536000), normalized.Seconds())
		assert.Equal(t, int64(0), normalized.Months())
	})

	t.Run("Leftover months use the month figure", func(t *testing.T) {
		// 14 months = 1 year + 2 months = 365 days + 60 days
		d := FromComponents(0, 14)
		normalized, err := d.Normalize(NormalizationStandard)
		assert.NoError(t, err)
		assert.Equal(t, int64(31536000+2*2592000), normalized.Seconds())
	})

	t.Run("Seconds pass through unchanged", func(t *testing.T) {
		d := FromComponents(123, 1)
		normalized, err := d.Normalize(NormalizationStandard)
		assert.NoError(t, err)
		assert.Equal(t, int64(123+2592000), normalized.Seconds())
	})

	t.Run("Idempotent once months are gone", func(t *testing.T) {
		d := FromComponents(98765, 27)
		once, err := d.Normalize(NormalizationStandard)
		assert.NoError(t, err)
		twice, err := once.Normalize(NormalizationStandard)
		assert.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("Unknown method fails", func(t *testing.T) {
		_, err := FromComponents(0, 1).Normalize(NormalizationMethod("average"))
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestDenormalize(t *testing.T) {
	t.Run("Extracts years first, then months", func(t *testing.T) {
		// 365 days + 30 days + 1 hour
		d := FromComponents(31536000+2592000+3600, 0)
		denormalized, err := d.Denormalize(NormalizationStandard)
		assert.NoError(t, err)
		assert.Equal(t, int64(13), denormalized.Months())
		assert.Equal(t, int64(3600), denormalized.Seconds())
	})

	t.Run("Existing months are kept", func(t *testing.T) {
		d := FromComponents(2592000, 5)
		denormalized, err := d.Denormalize(NormalizationStandard)
		assert.NoError(t, err)
		assert.Equal(t, int64(6), denormalized.Months())
		assert.Equal(t, int64(0), denormalized.Seconds())
	})

	t.Run("Idempotent once the leftover is below a month", func(t *testing.T) {
		d := FromComponents(987654321, 0)
		once, err := d.Denormalize(NormalizationStandard)
		assert.NoError(t, err)
		twice, err := once.Denormalize(NormalizationStandard)
		assert.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("Round trip through normalize is lossy by design", func(t *testing.T) {
		// 31 days of seconds denormalizes to 1 month + 1 day, which
		// normalizes back to 31 days; but 1 calendar month is not 30 days,
		// so unit-level identity is not guaranteed in general
		d := mustDuration(t, map[string]int64{"months": 1})
		normalized, err := d.Normalize(NormalizationStandard)
		assert.NoError(t, err)
		back, err := normalized.Denormalize(NormalizationStandard)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), back.Months())
		assert.Equal(t, int64(0), back.Seconds())
	})
}

func TestToUnit(t *testing.T) {
	t.Run("Truncates toward zero", func(t *testing.T) {
		testCases := []struct {
			seconds  int64
			unit     string
			expected int64
		}{
			{1, "minutes", 0},
			{-1, "minutes", 0},
			{59, "minutes", 0},
			{-59, "minutes", 0},
			{60, "minutes", 1},
			{-60, "minutes", -1},
			{90, "minutes", 1},
			{-90, "minutes", -1},
		}

		for _, tc := range testCases {
			value, err := FromComponents(tc.seconds, 0).ToUnit(tc.unit)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, value, "seconds=%d unit=%s", tc.seconds, tc.unit)
		}
	})

	t.Run("Seconds-based target folds months in first", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"months": 1})
		days, err := d.ToUnit("days")
		assert.NoError(t, err)
		assert.Equal(t, int64(30), days)
	})

	t.Run("Months-based target folds seconds in first", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"days": 365})
		years, err := d.ToUnit("years")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), years)
	})

	t.Run("Unknown unit fails", func(t *testing.T) {
		_, err := FromComponents(60, 0).ToUnit("moments")
		assert.ErrorIs(t, err, errs.ErrUnknownUnit)
	})
}

func TestToUnits(t *testing.T) {
	t.Run("90 minutes decomposes into 1 hour 30 minutes", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"minutes": 90})
		units, err := d.ToUnits("hours", "minutes")
		assert.NoError(t, err)
		assert.Equal(t, map[string]int64{"hours": 1, "minutes": 30}, units)
	})

	t.Run("Requested order is irrelevant", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"minutes": 90})
		units, err := d.ToUnits("minutes", "hours")
		assert.NoError(t, err)
		assert.Equal(t, map[string]int64{"hours": 1, "minutes": 30}, units)
	})

	t.Run("Output keys match the caller's spelling", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"minutes": 90})
		units, err := d.ToUnits("hour", "minute")
		assert.NoError(t, err)
		assert.Equal(t, map[string]int64{"hour": 1, "minute": 30}, units)
	})

	t.Run("Two years and fourteen months decompose across bases", func(t *testing.T) {
		// 38 months = 3 years + 2 months; 2 months = 60 days = 1440 hours
		d := mustDuration(t, map[string]int64{"years": 2, "months": 14})
		units, err := d.ToUnits("years", "hours")
		assert.NoError(t, err)
		assert.Equal(t, map[string]int64{"years": 3, "hours": 1440}, units)
	})

	t.Run("Negative durations decompose with negative brackets", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"minutes": -90})
		units, err := d.ToUnits("hours", "minutes")
		assert.NoError(t, err)
		assert.Equal(t, map[string]int64{"hours": -1, "minutes": -30}, units)
	})

	t.Run("Repeated units count once", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"minutes": 90})
		units, err := d.ToUnits("hours", "hours", "minutes")
		assert.NoError(t, err)
		assert.Equal(t, map[string]int64{"hours": 1, "minutes": 30}, units)
	})

	t.Run("Aliased repeats keep the first spelling", func(t *testing.T) {
		d := mustDuration(t, map[string]int64{"minutes": 90})
		units, err := d.ToUnits("hours", "hour")
		assert.NoError(t, err)
		assert.Equal(t, map[string]int64{"hours": 1}, units)
	})

	t.Run("Unknown unit fails the whole decomposition", func(t *testing.T) {
		_, err := FromComponents(60, 0).ToUnits("hours", "shakes")
		assert.ErrorIs(t, err, errs.ErrUnknownUnit)
	})
}

func TestCompare(t *testing.T) {
	t.Run("Twelve months equal 365 days", func(t *testing.T) {
		months := mustDuration(t, map[string]int64{"months": 12})
		days := mustDuration(t, map[string]int64{"days": 365})
		assert.Equal(t, 0, months.Compare(days))
		assert.True(t, months.Equal(days))
	})

	t.Run("Ordering follows normalized seconds", func(t *testing.T) {
		week := mustDuration(t, map[string]int64{"weeks": 1})
		month := mustDuration(t, map[string]int64{"months": 1})
		assert.Equal(t, -1, week.Compare(month))
		assert.Equal(t, 1, month.Compare(week))
	})

	t.Run("Negative against positive", func(t *testing.T) {
		assert.Equal(t, -1, FromComponents(-1, 0).Compare(FromComponents(0, 0)))
	})
}

func TestDurationJSON(t *testing.T) {
	t.Run("Marshals the canonical form", func(t *testing.T) {
		data, err := json.Marshal(FromComponents(5400, 14))
		assert.NoError(t, err)
		assert.JSONEq(t, `{"seconds":5400,"months":14}`, string(data))
	})

	t.Run("Round trips exactly", func(t *testing.T) {
		original := FromComponents(-987, 120)
		data, err := json.Marshal(original)
		assert.NoError(t, err)

		var decoded Duration
		assert.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	})
}
