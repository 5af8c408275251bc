package persistence

import (
	"context"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
)

// SpanRepository defines persistence operations for named spans
type SpanRepository interface {
	// Create stores a new span
	Create(ctx context.Context, span *entity.Span) error
	// GetByID retrieves a span by its identifier
	GetByID(ctx context.Context, id string) (*entity.Span, error)
	// List retrieves all stored spans ordered by creation time
	List(ctx context.Context) ([]*entity.Span, error)
	// Delete removes a span by its identifier
	Delete(ctx context.Context, id string) error
}
