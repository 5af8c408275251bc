package entity

import (
	"sort"
	"strings"

	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
)

// Basis identifies which of the two Duration components a unit scales against
type Basis string

const (
	// BasisSeconds marks exact units (seconds through weeks)
	BasisSeconds Basis = "seconds"
	// BasisMonths marks approximate calendar units (months through millennia)
	BasisMonths Basis = "months"
)

// Canonical unit names. Singular forms resolve to the same scales via the
// alias table.
const (
	UnitSeconds   = "seconds"
	UnitMinutes   = "minutes"
	UnitHours     = "hours"
	UnitDays      = "days"
	UnitWeeks     = "weeks"
	UnitMonths    = "months"
	UnitYears     = "years"
	UnitDecades   = "decades"
	UnitCenturies = "centuries"
	UnitMillennia = "millennia"
)

// UnitScale describes a unit as a multiple of its basis component
type UnitScale struct {
	Basis Basis
	Scale int64
}

// unitTable is the single source of truth for unit names and scale factors.
// Initialized once, read-only afterwards, safe for concurrent use.
var unitTable = map[string]UnitScale{
	UnitSeconds:   {Basis: BasisSeconds, Scale: 1},
	UnitMinutes:   {Basis: BasisSeconds, Scale: 60},
	UnitHours:     {Basis: BasisSeconds, Scale: 3600},
	UnitDays:      {Basis: BasisSeconds, Scale: 86400},
	UnitWeeks:     {Basis: BasisSeconds, Scale: 604800},
	UnitMonths:    {Basis: BasisMonths, Scale: 1},
	UnitYears:     {Basis: BasisMonths, Scale: 12},
	UnitDecades:   {Basis: BasisMonths, Scale: 120},
	UnitCenturies: {Basis: BasisMonths, Scale: 1200},
	UnitMillennia: {Basis: BasisMonths, Scale: 12000},
}

// unitAliases maps singular forms to their canonical plural names
var unitAliases = map[string]string{
	"second":     UnitSeconds,
	"minute":     UnitMinutes,
	"hour":       UnitHours,
	"day":        UnitDays,
	"week":       UnitWeeks,
	"month":      UnitMonths,
	"year":       UnitYears,
	"decade":     UnitDecades,
	"century":    UnitCenturies,
	"millennium": UnitMillennia,
}

// CanonicalUnit resolves a unit name or alias to its canonical plural form
func CanonicalUnit(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := unitTable[key]; ok {
		return key, nil
	}
	if canonical, ok := unitAliases[key]; ok {
		return canonical, nil
	}
	return "", errs.NewUnknownUnitError(name)
}

// ResolveUnit looks up the scale entry for a unit name or alias
func ResolveUnit(name string) (UnitScale, error) {
	canonical, err := CanonicalUnit(name)
	if err != nil {
		return UnitScale{}, err
	}
	return unitTable[canonical], nil
}

// magnitudeKey returns the composite ordering key for a unit. Months-based
// units carry a non-zero primary key, so a month always orders above a week
// even though 30 days of seconds would be comparable.
func magnitudeKey(scale UnitScale) (int64, int64) {
	if scale.Basis == BasisMonths {
		return scale.Scale, 0
	}
	return 0, scale.Scale
}

// SortUnits orders unit names ascending by calendar magnitude. Names keep the
// caller's spelling; only the order changes. Unknown names fail the whole call.
func SortUnits(names []string) ([]string, error) {
	type entry struct {
		name    string
		primary int64
		second  int64
	}
	entries := make([]entry, 0, len(names))
	for _, name := range names {
		scale, err := ResolveUnit(name)
		if err != nil {
			return nil, err
		}
		primary, second := magnitudeKey(scale)
		entries = append(entries, entry{name: name, primary: primary, second: second})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].primary != entries[j].primary {
			return entries[i].primary < entries[j].primary
		}
		return entries[i].second < entries[j].second
	})
	sorted := make([]string, len(entries))
	for i, e := range entries {
		sorted[i] = e.name
	}
	return sorted, nil
}

// sortUnitsDescending orders unit names largest-first for decomposition
func sortUnitsDescending(names []string) ([]string, error) {
	ascending, err := SortUnits(names)
	if err != nil {
		return nil, err
	}
	descending := make([]string, len(ascending))
	for i, name := range ascending {
		descending[len(ascending)-1-i] = name
	}
	return descending, nil
}

// NormalizationMethod names a preset of seconds-per-month and seconds-per-year
// figures used when folding between the two bases
type NormalizationMethod string

const (
	// NormalizationStandard assumes 30-day months and 365-day years
	NormalizationStandard NormalizationMethod = "standard"
	// NormalizationMinimum assumes 28-day months and 365-day years
	NormalizationMinimum NormalizationMethod = "minimum"
	// NormalizationMaximum assumes 31-day months and 366-day years
	NormalizationMaximum NormalizationMethod = "maximum"
)

// normalizationScale holds the second-equivalents for the two month-based
// units a method approximates
type normalizationScale struct {
	SecondsPerMonth int64
	SecondsPerYear  int64
}

var normalizationTable = map[NormalizationMethod]normalizationScale{
	NormalizationStandard: {SecondsPerMonth: 2592000, SecondsPerYear: 31536000},
	NormalizationMinimum:  {SecondsPerMonth: 2419200, SecondsPerYear: 31536000},
	NormalizationMaximum:  {SecondsPerMonth: 2678400, SecondsPerYear: 31622400},
}

// ResolveNormalizationMethod validates a method name
func ResolveNormalizationMethod(name string) (NormalizationMethod, error) {
	method := NormalizationMethod(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := normalizationTable[method]; !ok {
		return "", errs.ErrInvalidArgument
	}
	return method, nil
}

func resolveNormalization(method NormalizationMethod) (normalizationScale, error) {
	scale, ok := normalizationTable[method]
	if !ok {
		return normalizationScale{}, errs.ErrInvalidArgument
	}
	return scale, nil
}
