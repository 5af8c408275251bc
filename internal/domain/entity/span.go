package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
)

// Span is a named, persisted Duration. Storage keeps only the canonical
// {seconds, months} pair, so a reloaded span reproduces the original value
// exactly regardless of which unit mix built it.
type Span struct {
	ID        string
	Name      string
	Value     Duration
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSpan creates a span with the given identifier, name and duration value
func NewSpan(id, name string, value Duration, timeProvider coreport.TimeProvider) (*Span, error) {
	if name == "" {
		return nil, errs.ErrInvalidSpanName
	}
	if id == "" {
		return nil, errs.ErrInvalidSpanID
	}

	now := timeProvider.Now()
	return &Span{
		ID:        id,
		Name:      name,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetValue replaces the stored duration value
func (s *Span) SetValue(value Duration, timeProvider coreport.TimeProvider) {
	s.Value = value
	s.UpdatedAt = timeProvider.Now()
}
