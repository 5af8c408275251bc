package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/timespan-processor/internal/domain/entity"
)

// MockSpanRepository is a mock implementation of the SpanRepository port
type MockSpanRepository struct {
	mock.Mock
}

// Create stores a new span
func (m *MockSpanRepository) Create(ctx context.Context, span *entity.Span) error {
	args := m.Called(ctx, span)
	return args.Error(0)
}

// GetByID retrieves a span by its identifier
func (m *MockSpanRepository) GetByID(ctx context.Context, id string) (*entity.Span, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Span), args.Error(1)
}

// List retrieves all stored spans
func (m *MockSpanRepository) List(ctx context.Context) ([]*entity.Span, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Span), args.Error(1)
}

// Delete removes a span by its identifier
func (m *MockSpanRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
