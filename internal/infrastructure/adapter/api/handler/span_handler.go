package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SpanHandler handles span storage HTTP requests
type SpanHandler struct {
	spanUseCase   usecase.SpanUseCase
	defaultFormat string
	defaultPlaces int
	logger        coreport.Logger
}

// NewSpanHandler creates a new span handler instance
func NewSpanHandler(
	spanUseCase usecase.SpanUseCase,
	defaultFormat string,
	defaultPlaces int,
	logger coreport.Logger,
) *SpanHandler {
	return &SpanHandler{
		spanUseCase:   spanUseCase,
		defaultFormat: defaultFormat,
		defaultPlaces: defaultPlaces,
		logger:        logger,
	}
}

// toSpanDTO maps a usecase span response to its API form
func toSpanDTO(span *usecase.SpanResponse) dto.SpanResponse {
	return dto.SpanResponse{
		ID:        span.ID,
		Name:      span.Name,
		Seconds:   span.Seconds,
		Months:    span.Months,
		Text:      span.Text,
		CreatedAt: span.CreatedAt,
		UpdatedAt: span.UpdatedAt,
	}
}

// Create handles the POST /spans endpoint
func (h *SpanHandler) Create(c *gin.Context) {
	var req dto.CreateSpanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format",
		})
		return
	}

	span, err := h.spanUseCase.CreateSpan(c.Request.Context(), req.Name, req.Units)
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toSpanDTO(span))
}

// Get handles the GET /spans/:id endpoint
func (h *SpanHandler) Get(c *gin.Context) {
	span, err := h.spanUseCase.GetSpan(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toSpanDTO(span))
}

// List handles the GET /spans endpoint
func (h *SpanHandler) List(c *gin.Context) {
	spans, err := h.spanUseCase.ListSpans(c.Request.Context())
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	response := dto.SpanListResponse{Spans: make([]dto.SpanResponse, 0, len(spans))}
	for _, span := range spans {
		response.Spans = append(response.Spans, toSpanDTO(span))
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles the DELETE /spans/:id endpoint
func (h *SpanHandler) Delete(c *gin.Context) {
	if err := h.spanUseCase.DeleteSpan(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Render handles the GET /spans/:id/render endpoint
func (h *SpanHandler) Render(c *gin.Context) {
	format := c.Query("format")
	if format == "" {
		format = h.defaultFormat
	}

	// An absent places falls back to the configured default; an explicit 0
	// forces plain truncating output
	places := h.defaultPlaces
	if raw := c.Query("places"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Places must be a non-negative integer",
			})
			return
		}
		places = parsed
	}

	result, err := h.spanUseCase.RenderSpan(c.Request.Context(), c.Param("id"), format, places)
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.FormatResponse{Text: result.Text})
}
