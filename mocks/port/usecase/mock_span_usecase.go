package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	portuse "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/usecase"
)

// MockSpanUseCase is a mock implementation of the SpanUseCase port
type MockSpanUseCase struct {
	mock.Mock
}

// CreateSpan stores a new span built from unit quantities
func (m *MockSpanUseCase) CreateSpan(ctx context.Context, name string, units map[string]int64) (*portuse.SpanResponse, error) {
	args := m.Called(ctx, name, units)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portuse.SpanResponse), args.Error(1)
}

// GetSpan retrieves a stored span by ID
func (m *MockSpanUseCase) GetSpan(ctx context.Context, id string) (*portuse.SpanResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portuse.SpanResponse), args.Error(1)
}

// ListSpans retrieves all stored spans
func (m *MockSpanUseCase) ListSpans(ctx context.Context) ([]*portuse.SpanResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*portuse.SpanResponse), args.Error(1)
}

// DeleteSpan removes a stored span by ID
func (m *MockSpanUseCase) DeleteSpan(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// RenderSpan renders a stored span with a named format preset
func (m *MockSpanUseCase) RenderSpan(ctx context.Context, id, format string, places int) (*portuse.FormatResponse, error) {
	args := m.Called(ctx, id, format, places)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portuse.FormatResponse), args.Error(1)
}
