package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// isDuplicateKeyError checks if the error is a duplicate key error
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// SpanRepository implements the SpanRepository port using GORM
type SpanRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSpanRepository creates a new SpanRepository instance
func NewSpanRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SpanRepository {
	return &SpanRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// modelToEntity converts a span model to an entity
func (r *SpanRepository) modelToEntity(spanModel *model.Span) (*entity.Span, error) {
	span, err := entity.NewSpan(
		spanModel.ID,
		spanModel.Name,
		entity.FromComponents(spanModel.Seconds, spanModel.Months),
		r.timeProvider,
	)
	if err != nil {
		r.logger.Error("Failed to create span entity", map[string]any{
			"span_id": spanModel.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create span entity: %s", errs.ErrInternalServer, err.Error())
	}

	span.CreatedAt = spanModel.CreatedAt
	span.UpdatedAt = spanModel.UpdatedAt

	return span, nil
}

// entityToModel converts a span entity to its database model
func entityToModel(span *entity.Span) *model.Span {
	return &model.Span{
		ID:        span.ID,
		Name:      span.Name,
		Seconds:   span.Value.Seconds(),
		Months:    span.Value.Months(),
		CreatedAt: span.CreatedAt,
		UpdatedAt: span.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *SpanRepository) handleDatabaseError(operation string, err error, spanID string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"span_id": spanID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrSpanNotFound
	}

	if isDuplicateKeyError(err) {
		return errs.ErrDuplicateSpan
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create stores a new span
func (r *SpanRepository) Create(ctx context.Context, span *entity.Span) error {
	if err := r.db.WithContext(ctx).Create(entityToModel(span)).Error; err != nil {
		return r.handleDatabaseError("creating span", err, span.ID)
	}
	return nil
}

// GetByID retrieves a span by its identifier
func (r *SpanRepository) GetByID(ctx context.Context, id string) (*entity.Span, error) {
	var spanModel model.Span
	if err := r.db.WithContext(ctx).First(&spanModel, "id = ?", id).Error; err != nil {
		return nil, r.handleDatabaseError("getting span", err, id)
	}
	return r.modelToEntity(&spanModel)
}

// List retrieves all stored spans ordered by creation time
func (r *SpanRepository) List(ctx context.Context) ([]*entity.Span, error) {
	var spanModels []model.Span
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&spanModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing spans", err, "")
	}

	spans := make([]*entity.Span, 0, len(spanModels))
	for i := range spanModels {
		span, err := r.modelToEntity(&spanModels[i])
		if err != nil {
			return nil, err
		}
		spans = append(spans, span)
	}
	return spans, nil
}

// Delete removes a span by its identifier
func (r *SpanRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Span{}, "id = ?", id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting span", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrSpanNotFound
	}
	return nil
}
