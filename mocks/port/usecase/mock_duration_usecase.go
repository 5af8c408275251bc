package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	portuse "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/usecase"
)

// MockDurationUseCase is a mock implementation of the DurationUseCase port
type MockDurationUseCase struct {
	mock.Mock
}

// Convert expresses a duration as a whole count of the target unit
func (m *MockDurationUseCase) Convert(ctx context.Context, units map[string]int64, target string) (*portuse.ConvertResponse, error) {
	args := m.Called(ctx, units, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portuse.ConvertResponse), args.Error(1)
}

// Decompose splits a duration across the requested units
func (m *MockDurationUseCase) Decompose(ctx context.Context, units map[string]int64, into []string) (*portuse.DecomposeResponse, error) {
	args := m.Called(ctx, units, into)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portuse.DecomposeResponse), args.Error(1)
}

// Format renders a duration with a named format preset
func (m *MockDurationUseCase) Format(ctx context.Context, units map[string]int64, format string, places int) (*portuse.FormatResponse, error) {
	args := m.Called(ctx, units, format, places)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portuse.FormatResponse), args.Error(1)
}

// Project applies a duration to a timestamp
func (m *MockDurationUseCase) Project(ctx context.Context, units map[string]int64, at *time.Time, backward bool) (*portuse.ProjectResponse, error) {
	args := m.Called(ctx, units, at, backward)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portuse.ProjectResponse), args.Error(1)
}
