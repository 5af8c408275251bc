package usecase

import (
	"context"
	"time"
)

// SpanResponse represents a stored span together with its canonical
// {seconds, months} form and a default rendering
type SpanResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Seconds   int64     `json:"seconds"`
	Months    int64     `json:"months"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SpanUseCase defines operations over named, persisted spans
type SpanUseCase interface {
	// CreateSpan stores a new span built from unit quantities
	CreateSpan(ctx context.Context, name string, units map[string]int64) (*SpanResponse, error)

	// GetSpan retrieves a stored span by ID
	GetSpan(ctx context.Context, id string) (*SpanResponse, error)

	// ListSpans retrieves all stored spans
	ListSpans(ctx context.Context) ([]*SpanResponse, error)

	// DeleteSpan removes a stored span by ID
	DeleteSpan(ctx context.Context, id string) error

	// RenderSpan renders a stored span with a named format preset; a positive
	// places applies rounded rendering
	RenderSpan(ctx context.Context, id, format string, places int) (*FormatResponse, error)
}
