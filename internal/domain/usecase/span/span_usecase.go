package span

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/usecase"
)

// SpanUseCase implements span storage business logic
type SpanUseCase struct {
	spanRepo     persistence.SpanRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSpanUseCase creates a new span use case instance
func NewSpanUseCase(
	spanRepo persistence.SpanRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.SpanUseCase {
	return &SpanUseCase{
		spanRepo:     spanRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// toResponse maps a span entity to its response form
func toResponse(s *entity.Span) *usecase.SpanResponse {
	return &usecase.SpanResponse{
		ID:        s.ID,
		Name:      s.Name,
		Seconds:   s.Value.Seconds(),
		Months:    s.Value.Months(),
		Text:      s.Value.String(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// CreateSpan stores a new span built from unit quantities
func (u *SpanUseCase) CreateSpan(ctx context.Context, name string, units map[string]int64) (*usecase.SpanResponse, error) {
	value, err := entity.NewDuration(units)
	if err != nil {
		u.logger.Warn("Rejected span creation", map[string]any{
			"name":  name,
			"units": units,
			"error": err.Error(),
		})
		return nil, err
	}

	span, err := entity.NewSpan(uuid.NewString(), name, value, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.spanRepo.Create(ctx, span); err != nil {
		u.logger.Error("Failed to store span", map[string]any{
			"span_id": span.ID,
			"name":    name,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Span created", map[string]any{
		"span_id": span.ID,
		"name":    name,
		"seconds": value.Seconds(),
		"months":  value.Months(),
	})

	return toResponse(span), nil
}

// GetSpan retrieves a stored span by ID
func (u *SpanUseCase) GetSpan(ctx context.Context, id string) (*usecase.SpanResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errs.ErrInvalidSpanID
	}

	span, err := u.spanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toResponse(span), nil
}

// ListSpans retrieves all stored spans
func (u *SpanUseCase) ListSpans(ctx context.Context) ([]*usecase.SpanResponse, error) {
	spans, err := u.spanRepo.List(ctx)
	if err != nil {
		u.logger.Error("Failed to list spans", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	responses := make([]*usecase.SpanResponse, 0, len(spans))
	for _, s := range spans {
		responses = append(responses, toResponse(s))
	}
	return responses, nil
}

// DeleteSpan removes a stored span by ID
func (u *SpanUseCase) DeleteSpan(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errs.ErrInvalidSpanID
	}

	if err := u.spanRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("Span deleted", map[string]any{
		"span_id": id,
	})
	return nil
}

// RenderSpan renders a stored span with a named format preset
func (u *SpanUseCase) RenderSpan(ctx context.Context, id, format string, places int) (*usecase.FormatResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errs.ErrInvalidSpanID
	}

	span, err := u.spanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	spec, err := entity.ResolveFormat(format)
	if err != nil {
		return nil, err
	}

	var text string
	if places > 0 {
		text, err = span.Value.RoundedString(places, spec)
	} else {
		text, err = span.Value.Format(spec)
	}
	if err != nil {
		return nil, err
	}

	return &usecase.FormatResponse{Text: text}, nil
}
