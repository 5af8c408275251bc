package entity

import (
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
)

// Named format presets
const (
	FormatMicro       = "micro"
	FormatShort       = "short"
	FormatLong        = "long"
	FormatLongMinimal = "long_minimal"
)

// UnitLabel holds the singular and plural labels for one unit
type UnitLabel struct {
	Singular string
	Plural   string
}

// FormatSpec describes how a Duration renders as text. Only the units listed
// in Labels are visible; a preset that omits weeks simply doesn't list them.
type FormatSpec struct {
	// Labels maps unit names to their display labels
	Labels map[string]UnitLabel
	// Separator sits between a quantity and its label
	Separator string
	// Delimiter joins the rendered unit groups
	Delimiter string
	// Count limits how many of the largest non-zero units are included;
	// zero means no limit
	Count int
}

// formatTable holds the preset format specifications. Like the unit table it
// is initialized once and never mutated.
var formatTable = map[string]FormatSpec{
	FormatMicro: {
		Labels: map[string]UnitLabel{
			UnitSeconds: {"s", "s"},
			UnitMinutes: {"m", "m"},
			UnitHours:   {"h", "h"},
			UnitDays:    {"d", "d"},
			UnitMonths:  {"mo", "mo"},
			UnitYears:   {"y", "y"},
		},
		Separator: "",
		Delimiter: "",
		Count:     1,
	},
	FormatShort: {
		Labels: map[string]UnitLabel{
			UnitSeconds: {"sec", "secs"},
			UnitMinutes: {"min", "mins"},
			UnitHours:   {"hr", "hrs"},
			UnitDays:    {"day", "days"},
			UnitWeeks:   {"wk", "wks"},
			UnitMonths:  {"mo", "mos"},
			UnitYears:   {"yr", "yrs"},
		},
		Separator: " ",
		Delimiter: " ",
		Count:     2,
	},
	FormatLong: {
		Labels: map[string]UnitLabel{
			UnitSeconds: {"second", "seconds"},
			UnitMinutes: {"minute", "minutes"},
			UnitHours:   {"hour", "hours"},
			UnitDays:    {"day", "days"},
			UnitWeeks:   {"week", "weeks"},
			UnitMonths:  {"month", "months"},
			UnitYears:   {"year", "years"},
		},
		Separator: " ",
		Delimiter: ", ",
	},
	FormatLongMinimal: {
		Labels: map[string]UnitLabel{
			UnitSeconds: {"second", "seconds"},
			UnitMinutes: {"minute", "minutes"},
			UnitHours:   {"hour", "hours"},
			UnitDays:    {"day", "days"},
			UnitMonths:  {"month", "months"},
			UnitYears:   {"year", "years"},
		},
		Separator: " ",
		Delimiter: ", ",
	},
}

// ResolveFormat looks up a preset format specification by name
func ResolveFormat(name string) (FormatSpec, error) {
	spec, ok := formatTable[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return FormatSpec{}, errs.ErrInvalidArgument
	}
	return spec, nil
}

// unitNames collects the unit names a spec renders
func (s FormatSpec) unitNames() []string {
	names := make([]string, 0, len(s.Labels))
	for name := range s.Labels {
		names = append(names, name)
	}
	return names
}

// label picks the singular or plural label for a quantity
func (s FormatSpec) label(unit string, quantity int64) string {
	l := s.Labels[unit]
	if quantity == 1 || quantity == -1 {
		return l.Singular
	}
	return l.Plural
}

// zeroFallback renders the zero value using the smallest visible unit, so an
// all-zero decomposition never produces an empty string
func (s FormatSpec) zeroFallback() string {
	ordered, err := SortUnits(s.unitNames())
	if err != nil || len(ordered) == 0 {
		return "0" + s.Separator + "seconds"
	}
	return "0" + s.Separator + s.label(ordered[0], 0)
}

// render joins decomposed parts according to the spec, dropping zero entries
// and keeping only the Count largest
func (s FormatSpec) render(parts []unitQuantity) string {
	groups := make([]string, 0, len(parts))
	for _, part := range parts {
		if part.Quantity == 0 {
			continue
		}
		if s.Count > 0 && len(groups) == s.Count {
			break
		}
		groups = append(groups,
			strconv.FormatInt(part.Quantity, 10)+s.Separator+s.label(part.Name, part.Quantity))
	}
	if len(groups) == 0 {
		return s.zeroFallback()
	}
	return strings.Join(groups, s.Delimiter)
}

// Format renders the Duration according to a format specification
func (d Duration) Format(spec FormatSpec) (string, error) {
	parts, err := d.decompose(NormalizationStandard, spec.unitNames())
	if err != nil {
		return "", err
	}
	return spec.render(parts), nil
}

// FormatNamed renders the Duration using a preset format
func (d Duration) FormatNamed(name string) (string, error) {
	spec, err := ResolveFormat(name)
	if err != nil {
		return "", err
	}
	return d.Format(spec)
}

// String renders with the long preset. Falls back to the canonical component
// form only if the format table were ever broken, which would be a bug.
func (d Duration) String() string {
	text, err := d.Format(formatTable[FormatLong])
	if err != nil {
		return "duration(" + strconv.FormatInt(d.seconds, 10) + "s " + strconv.FormatInt(d.months, 10) + "mo)"
	}
	return text
}

// RoundedString renders the Duration keeping the given number of significant
// units, rounding the boundary unit half-up instead of truncating. The
// remainder below the boundary is doubled and converted into the boundary
// unit; a whole unit there means the true remainder was at least half a unit.
// The increment is applied to a rebuilt Duration before rendering, so a
// rounded-up 24 hours carries into days rather than printing as "24 hours".
func (d Duration) RoundedString(places int, spec FormatSpec) (string, error) {
	if places <= 0 {
		return "", errs.ErrInvalidArgument
	}
	parts, err := d.decompose(NormalizationStandard, spec.unitNames())
	if err != nil {
		return "", err
	}

	nonzero := make([]unitQuantity, 0, len(parts))
	for _, part := range parts {
		if part.Quantity != 0 {
			nonzero = append(nonzero, part)
		}
	}

	limited := spec
	limited.Count = places

	if len(nonzero) <= places {
		return limited.render(parts), nil
	}

	retained := Duration{}
	for _, part := range nonzero[:places] {
		unit, err := FromUnit(part.Name, part.Quantity)
		if err != nil {
			return "", err
		}
		retained = retained.Add(unit)
	}

	boundary := nonzero[places-1]
	remainder := d.Sub(retained)
	norm := normalizationTable[NormalizationStandard]
	half := remainder.Mul(2).toUnitWith(boundary.Scale, norm)
	switch {
	case half >= 1:
		unit, _ := FromUnit(boundary.Name, 1)
		retained = retained.Add(unit)
	case half <= -1:
		unit, _ := FromUnit(boundary.Name, 1)
		retained = retained.Sub(unit)
	}

	return retained.Format(limited)
}
