package dto

// ConvertRequest asks for a whole-unit conversion of a duration built from
// unit quantities
type ConvertRequest struct {
	Units  map[string]int64 `json:"units" binding:"required"`
	Target string           `json:"target" binding:"required"`
}

// ConvertResponse carries the conversion result
type ConvertResponse struct {
	Value int64  `json:"value"`
	Unit  string `json:"unit"`
}

// DecomposeRequest asks for a decomposition across the given units
type DecomposeRequest struct {
	Units map[string]int64 `json:"units" binding:"required"`
	Into  []string         `json:"into" binding:"required,min=1"`
}

// DecomposeResponse carries the decomposed unit quantities
type DecomposeResponse struct {
	Units map[string]int64 `json:"units"`
}

// FormatRequest asks for a text rendering of a duration. An omitted places
// falls back to the configured default; an explicit 0 forces plain truncating
// output.
type FormatRequest struct {
	Units  map[string]int64 `json:"units" binding:"required"`
	Format string           `json:"format"`
	Places *int             `json:"places" binding:"omitempty,min=0"`
}

// FormatResponse carries the rendered text
type FormatResponse struct {
	Text string `json:"text"`
}

// ProjectRequest asks for a calendar projection. Timestamp is RFC3339; when
// omitted the projection runs against the current clock. Direction is either
// "after" (default) or "before".
type ProjectRequest struct {
	Units     map[string]int64 `json:"units" binding:"required"`
	Timestamp string           `json:"timestamp"`
	Direction string           `json:"direction" binding:"omitempty,oneof=after before"`
}

// ProjectResponse carries the projected timestamp in RFC3339
type ProjectResponse struct {
	Timestamp string `json:"timestamp"`
}
