package dto

import "time"

// CreateSpanRequest asks to store a named span built from unit quantities
type CreateSpanRequest struct {
	Name  string           `json:"name" binding:"required"`
	Units map[string]int64 `json:"units" binding:"required"`
}

// SpanResponse represents a stored span with its canonical components
type SpanResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Seconds   int64     `json:"seconds"`
	Months    int64     `json:"months"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SpanListResponse wraps a list of stored spans
type SpanListResponse struct {
	Spans []SpanResponse `json:"spans"`
}
