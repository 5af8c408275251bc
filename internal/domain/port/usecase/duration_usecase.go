package usecase

import (
	"context"
	"time"
)

// ConvertResponse is the result of a whole-unit conversion
type ConvertResponse struct {
	Value int64  `json:"value"`
	Unit  string `json:"unit"`
}

// DecomposeResponse is the result of splitting a duration across units
type DecomposeResponse struct {
	Units map[string]int64 `json:"units"`
}

// FormatResponse is the result of rendering a duration as text
type FormatResponse struct {
	Text string `json:"text"`
}

// ProjectResponse is the result of applying a duration to a timestamp
type ProjectResponse struct {
	Timestamp time.Time `json:"timestamp"`
}

// DurationUseCase defines the stateless duration operations
type DurationUseCase interface {
	// Convert expresses the duration built from the unit quantities as a whole
	// count of the target unit
	Convert(ctx context.Context, units map[string]int64, target string) (*ConvertResponse, error)

	// Decompose splits the duration across the requested units, largest first
	Decompose(ctx context.Context, units map[string]int64, into []string) (*DecomposeResponse, error)

	// Format renders the duration with a named format preset. A positive
	// places applies round-half-up rounding at that many significant units.
	Format(ctx context.Context, units map[string]int64, format string, places int) (*FormatResponse, error)

	// Project applies the duration to a timestamp with calendar semantics.
	// A nil timestamp projects against the current clock (from-now / ago).
	// Backward projection negates the duration before applying it.
	Project(ctx context.Context, units map[string]int64, at *time.Time, backward bool) (*ProjectResponse, error)
}
