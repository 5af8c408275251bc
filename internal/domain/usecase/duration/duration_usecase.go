package duration

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/usecase"
)

// DurationUseCase implements the stateless duration operations
type DurationUseCase struct {
	method       entity.NormalizationMethod
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewDurationUseCase creates a new duration use case instance. The
// normalization method is the configured preset for folding between the
// seconds and months bases.
func NewDurationUseCase(
	method entity.NormalizationMethod,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.DurationUseCase {
	return &DurationUseCase{
		method:       method,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Convert expresses the duration built from the unit quantities as a whole
// count of the target unit
func (u *DurationUseCase) Convert(ctx context.Context, units map[string]int64, target string) (*usecase.ConvertResponse, error) {
	d, err := entity.NewDuration(units)
	if err != nil {
		u.logger.Warn("Rejected conversion request", map[string]any{
			"units": units,
			"error": err.Error(),
		})
		return nil, err
	}

	value, err := d.ToUnitUsing(target, u.method)
	if err != nil {
		u.logger.Warn("Rejected conversion target", map[string]any{
			"target": target,
			"error":  err.Error(),
		})
		return nil, err
	}

	canonical, err := entity.CanonicalUnit(target)
	if err != nil {
		return nil, err
	}

	u.logger.Debug("Duration converted", map[string]any{
		"seconds": d.Seconds(),
		"months":  d.Months(),
		"target":  canonical,
		"value":   value,
	})

	return &usecase.ConvertResponse{Value: value, Unit: canonical}, nil
}

// Decompose splits the duration across the requested units
func (u *DurationUseCase) Decompose(ctx context.Context, units map[string]int64, into []string) (*usecase.DecomposeResponse, error) {
	d, err := entity.NewDuration(units)
	if err != nil {
		return nil, err
	}

	decomposed, err := d.ToUnitsUsing(u.method, into...)
	if err != nil {
		u.logger.Warn("Rejected decomposition request", map[string]any{
			"into":  into,
			"error": err.Error(),
		})
		return nil, err
	}

	return &usecase.DecomposeResponse{Units: decomposed}, nil
}

// Format renders the duration with a named format preset
func (u *DurationUseCase) Format(ctx context.Context, units map[string]int64, format string, places int) (*usecase.FormatResponse, error) {
	d, err := entity.NewDuration(units)
	if err != nil {
		return nil, err
	}

	spec, err := entity.ResolveFormat(format)
	if err != nil {
		u.logger.Warn("Rejected format name", map[string]any{
			"format": format,
			"error":  err.Error(),
		})
		return nil, err
	}

	var text string
	if places > 0 {
		text, err = d.RoundedString(places, spec)
	} else {
		text, err = d.Format(spec)
	}
	if err != nil {
		return nil, err
	}

	return &usecase.FormatResponse{Text: text}, nil
}

// Project applies the duration to a timestamp; a nil timestamp uses the
// current clock
func (u *DurationUseCase) Project(ctx context.Context, units map[string]int64, at *time.Time, backward bool) (*usecase.ProjectResponse, error) {
	d, err := entity.NewDuration(units)
	if err != nil {
		return nil, err
	}

	var base time.Time
	if at != nil {
		base = *at
	} else {
		base = u.timeProvider.Now()
	}

	var projected time.Time
	if backward {
		projected = d.Before(base)
	} else {
		projected = d.After(base)
	}

	u.logger.Debug("Duration projected", map[string]any{
		"seconds":  d.Seconds(),
		"months":   d.Months(),
		"backward": backward,
		"base":     base,
		"result":   projected,
	})

	return &usecase.ProjectResponse{Timestamp: projected}, nil
}
