package handler

import (
	"errors"
	"net/http"
	"time"

	domainerr "github.com/amirhossein-jamali/timespan-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timespan-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DurationHandler handles stateless duration HTTP requests
type DurationHandler struct {
	durationUseCase usecase.DurationUseCase
	defaultFormat   string
	defaultPlaces   int
	logger          coreport.Logger
}

// NewDurationHandler creates a new duration handler instance
func NewDurationHandler(
	durationUseCase usecase.DurationUseCase,
	defaultFormat string,
	defaultPlaces int,
	logger coreport.Logger,
) *DurationHandler {
	return &DurationHandler{
		durationUseCase: durationUseCase,
		defaultFormat:   defaultFormat,
		defaultPlaces:   defaultPlaces,
		logger:          logger,
	}
}

// writeDomainError maps a domain error to an HTTP response
func writeDomainError(c *gin.Context, logger coreport.Logger, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, domainerr.ErrUnknownUnit):
		statusCode = http.StatusBadRequest
		message = "Unknown unit name"
	case errors.Is(err, domainerr.ErrInvalidOperand),
		errors.Is(err, domainerr.ErrInvalidArgument),
		errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidSpanName),
		errors.Is(err, domainerr.ErrInvalidSpanID):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domainerr.ErrSpanNotFound):
		statusCode = http.StatusNotFound
		message = "Span not found"
	case errors.Is(err, domainerr.ErrDuplicateSpan):
		statusCode = http.StatusConflict
		message = "Span with this name already exists"
	}

	if statusCode == http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// Convert handles the POST /duration/convert endpoint
func (h *DurationHandler) Convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format",
		})
		return
	}

	result, err := h.durationUseCase.Convert(c.Request.Context(), req.Units, req.Target)
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{Value: result.Value, Unit: result.Unit})
}

// Decompose handles the POST /duration/decompose endpoint
func (h *DurationHandler) Decompose(c *gin.Context) {
	var req dto.DecomposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format",
		})
		return
	}

	result, err := h.durationUseCase.Decompose(c.Request.Context(), req.Units, req.Into)
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.DecomposeResponse{Units: result.Units})
}

// Format handles the POST /duration/format endpoint
func (h *DurationHandler) Format(c *gin.Context) {
	var req dto.FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format",
		})
		return
	}

	format := req.Format
	if format == "" {
		format = h.defaultFormat
	}

	places := h.defaultPlaces
	if req.Places != nil {
		places = *req.Places
	}

	result, err := h.durationUseCase.Format(c.Request.Context(), req.Units, format, places)
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.FormatResponse{Text: result.Text})
}

// Project handles the POST /duration/project endpoint
func (h *DurationHandler) Project(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format",
		})
		return
	}

	var at *time.Time
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Timestamp must be RFC3339",
			})
			return
		}
		at = &parsed
	}

	result, err := h.durationUseCase.Project(c.Request.Context(), req.Units, at, req.Direction == "before")
	if err != nil {
		writeDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectResponse{
		Timestamp: result.Timestamp.Format(time.RFC3339Nano),
	})
}
