package entity

import (
	"encoding/json"

	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
)

const monthsPerYear = 12

// Duration is an immutable relative amount of time held in two orthogonal
// integer components: exact seconds (basis for seconds through weeks) and
// approximate months (basis for months through millennia). The components are
// never reconciled implicitly; a Duration of one month is not interchangeable
// with 30 days until an explicit Normalize or Denormalize step.
//
// Every operation returns a new value, so Durations may be freely shared
// across goroutines.
type Duration struct {
	seconds int64
	months  int64
}

// NewDuration builds a Duration from a mapping of unit name to quantity.
// Each entry is resolved through the unit table and summed into the matching
// basis component. An unrecognized unit name fails the whole construction.
func NewDuration(quantities map[string]int64) (Duration, error) {
	var d Duration
	for name, quantity := range quantities {
		scale, err := ResolveUnit(name)
		if err != nil {
			return Duration{}, err
		}
		if scale.Basis == BasisSeconds {
			d.seconds += quantity * scale.Scale
		} else {
			d.months += quantity * scale.Scale
		}
	}
	return d, nil
}

// FromComponents builds a Duration directly from its canonical two-integer
// representation. This is the round-trippable form used for storage and
// interchange; no unit resolution is involved.
func FromComponents(seconds, months int64) Duration {
	return Duration{seconds: seconds, months: months}
}

// FromUnit builds a Duration holding a quantity of a single unit
func FromUnit(name string, quantity int64) (Duration, error) {
	return NewDuration(map[string]int64{name: quantity})
}

// Seconds returns the raw seconds component
func (d Duration) Seconds() int64 {
	return d.seconds
}

// Months returns the raw months component
func (d Duration) Months() int64 {
	return d.months
}

// Component returns the raw value of the named basis component
func (d Duration) Component(basis Basis) (int64, error) {
	switch basis {
	case BasisSeconds:
		return d.seconds, nil
	case BasisMonths:
		return d.months, nil
	default:
		return 0, errs.ErrInvalidArgument
	}
}

// IsZero reports whether both components are zero
func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.months == 0
}

// Add returns the component-wise sum of two Durations
func (d Duration) Add(other Duration) Duration {
	return Duration{seconds: d.seconds + other.seconds, months: d.months + other.months}
}

// Sub returns the component-wise difference of two Durations
func (d Duration) Sub(other Duration) Duration {
	return Duration{seconds: d.seconds - other.seconds, months: d.months - other.months}
}

// Neg returns the Duration with both components negated
func (d Duration) Neg() Duration {
	return Duration{seconds: -d.seconds, months: -d.months}
}

// Mul returns the Duration scaled component-wise by an integer factor
func (d Duration) Mul(factor int64) Duration {
	return Duration{seconds: d.seconds * factor, months: d.months * factor}
}

// Div returns the Duration divided component-wise by an integer divisor,
// truncating toward zero per component independently. Proportionality between
// the two bases is not preserved when the components are not simultaneously
// divisible; that is expected truncation behavior, not a defect.
func (d Duration) Div(divisor int64) (Duration, error) {
	if divisor == 0 {
		return Duration{}, errs.ErrInvalidOperand
	}
	return Duration{seconds: d.seconds / divisor, months: d.months / divisor}, nil
}

// normalizeWith folds the months component into seconds. Whole years are
// extracted from the months component first, then leftover months, each
// converted with the method's second-equivalents. The seconds component passes
// through unchanged.
func (d Duration) normalizeWith(scale normalizationScale) Duration {
	years := d.months / monthsPerYear
	months := d.months - years*monthsPerYear
	return Duration{seconds: d.seconds + years*scale.SecondsPerYear + months*scale.SecondsPerMonth}
}

// denormalizeWith folds the seconds component into months. The largest whole
// number of approximated years is extracted from the raw seconds first, then
// whole months, with the leftover seconds carried forward.
func (d Duration) denormalizeWith(scale normalizationScale) Duration {
	seconds := d.seconds
	years := seconds / scale.SecondsPerYear
	seconds -= years * scale.SecondsPerYear
	months := seconds / scale.SecondsPerMonth
	seconds -= months * scale.SecondsPerMonth
	return Duration{seconds: seconds, months: d.months + years*monthsPerYear + months}
}

// Normalize replaces every month-based quantity with its second-equivalent
// approximation under the given method. Normalizing an already-normalized
// value is a no-op. Normalize then Denormalize is lossy by design; the
// approximation constants do not describe real calendar months.
func (d Duration) Normalize(method NormalizationMethod) (Duration, error) {
	scale, err := resolveNormalization(method)
	if err != nil {
		return Duration{}, err
	}
	return d.normalizeWith(scale), nil
}

// Denormalize replaces as much of the seconds component as possible with
// month-based quantities under the given method
func (d Duration) Denormalize(method NormalizationMethod) (Duration, error) {
	scale, err := resolveNormalization(method)
	if err != nil {
		return Duration{}, err
	}
	return d.denormalizeWith(scale), nil
}

// toUnitWith converts the whole Duration into a count of the given unit,
// truncating toward zero
func (d Duration) toUnitWith(scale UnitScale, norm normalizationScale) int64 {
	if scale.Basis == BasisSeconds {
		return d.normalizeWith(norm).seconds / scale.Scale
	}
	return d.denormalizeWith(norm).months / scale.Scale
}

// ToUnitUsing converts the Duration into a whole count of the named unit under
// the given normalization method. Seconds-based targets normalize first,
// month-based targets denormalize first; either way the division truncates
// toward zero, so a deficit smaller than one unit yields 0 rather than -1.
func (d Duration) ToUnitUsing(name string, method NormalizationMethod) (int64, error) {
	scale, err := ResolveUnit(name)
	if err != nil {
		return 0, err
	}
	norm, err := resolveNormalization(method)
	if err != nil {
		return 0, err
	}
	return d.toUnitWith(scale, norm), nil
}

// ToUnit converts the Duration into a whole count of the named unit under the
// standard method
func (d Duration) ToUnit(name string) (int64, error) {
	return d.ToUnitUsing(name, NormalizationStandard)
}

// unitQuantity pairs a requested unit name with the whole-unit count that fits
// in its bracket of the decomposition
type unitQuantity struct {
	Name     string
	Scale    UnitScale
	Quantity int64
}

// decompose splits the Duration across the requested units, largest first.
// Each step takes the whole-unit count out of the running remainder, so every
// non-largest entry holds only the remainder within its own bracket. The
// requested order is irrelevant; magnitude ordering is imposed internally.
// A unit requested more than once (directly or through an alias) keeps only
// its first spelling; a repeated pass would consume an already-drained
// remainder and report 0.
func (d Duration) decompose(method NormalizationMethod, names []string) ([]unitQuantity, error) {
	norm, err := resolveNormalization(method)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		canonical, err := CanonicalUnit(name)
		if err != nil {
			return nil, err
		}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		unique = append(unique, name)
	}
	ordered, err := sortUnitsDescending(unique)
	if err != nil {
		return nil, err
	}
	result := make([]unitQuantity, 0, len(ordered))
	remainder := d
	for _, name := range ordered {
		scale, _ := ResolveUnit(name)
		quantity := remainder.toUnitWith(scale, norm)
		consumed := Duration{}
		if scale.Basis == BasisSeconds {
			consumed.seconds = quantity * scale.Scale
		} else {
			consumed.months = quantity * scale.Scale
		}
		remainder = remainder.Sub(consumed)
		result = append(result, unitQuantity{Name: name, Scale: scale, Quantity: quantity})
	}
	return result, nil
}

// ToUnitsUsing decomposes the Duration into the given units under the given
// normalization method. Output keys match the caller's requested names, so an
// aliased request comes back under the alias.
func (d Duration) ToUnitsUsing(method NormalizationMethod, names ...string) (map[string]int64, error) {
	parts, err := d.decompose(method, names)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(parts))
	for _, part := range parts {
		out[part.Name] = part.Quantity
	}
	return out, nil
}

// ToUnits decomposes the Duration into the given units under the standard
// method
func (d Duration) ToUnits(names ...string) (map[string]int64, error) {
	return d.ToUnitsUsing(NormalizationStandard, names...)
}

// Compare orders two Durations by their standard-normalized seconds, returning
// -1, 0 or 1
func (d Duration) Compare(other Duration) int {
	norm := normalizationTable[NormalizationStandard]
	a := d.normalizeWith(norm).seconds
	b := other.normalizeWith(norm).seconds
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two Durations normalize to the same number of seconds.
// One year equals 365 days under the standard method even though the raw
// components differ.
func (d Duration) Equal(other Duration) bool {
	return d.Compare(other) == 0
}

// durationJSON is the canonical serialized form
type durationJSON struct {
	Seconds int64 `json:"seconds"`
	Months  int64 `json:"months"`
}

// MarshalJSON encodes the canonical {seconds, months} representation
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(durationJSON{Seconds: d.seconds, Months: d.months})
}

// UnmarshalJSON decodes the canonical {seconds, months} representation
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw durationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = Duration{seconds: raw.Seconds, months: raw.Months}
	return nil
}
