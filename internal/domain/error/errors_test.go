package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrUnknownUnit.Error() != "unknown unit" {
		t.Errorf("ErrUnknownUnit has unexpected message: %s", ErrUnknownUnit.Error())
	}
	if ErrInvalidOperand.Error() != "invalid operand" {
		t.Errorf("ErrInvalidOperand has unexpected message: %s", ErrInvalidOperand.Error())
	}
	if ErrSpanNotFound.Error() != "span not found" {
		t.Errorf("ErrSpanNotFound has unexpected message: %s", ErrSpanNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"UnknownUnit", ErrUnknownUnit, 4101},
		{"InvalidOperand", ErrInvalidOperand, 4102},
		{"InvalidArgument", ErrInvalidArgument, 4103},
		{"InvalidRequest", ErrInvalidRequest, 4104},
		{"InvalidSpanName", ErrInvalidSpanName, 4104},
		{"InvalidSpanID", ErrInvalidSpanID, 4104},
		{"DuplicateSpan", ErrDuplicateSpan, 4105},
		{"SpanNotFound", ErrSpanNotFound, 4040},
		{"CalendarOutOfBounds", ErrCalendarOutOfBounds, 5001},
		{"DatabaseConnection", ErrDatabaseConnection, 5000},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrUnknownUnit), 4101},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestUnitError(t *testing.T) {
	unitErr := NewUnknownUnitError("fortnights")

	expectedErrMsg := `unit "fortnights": unknown unit`
	if unitErr.Error() != expectedErrMsg {
		t.Errorf("UnitError.Error() = %s, want %s", unitErr.Error(), expectedErrMsg)
	}

	if !errors.Is(unitErr, ErrUnknownUnit) {
		t.Error("UnitError should unwrap to ErrUnknownUnit")
	}
	if !IsUnknownUnitError(unitErr) {
		t.Error("IsUnknownUnitError should recognize a wrapped unknown unit error")
	}

	var typed *UnitError
	if !errors.As(unitErr, &typed) {
		t.Fatal("UnitError should be retrievable with errors.As")
	}
	fields := typed.LogFields()
	if fields["error_type"] != "unit_error" {
		t.Errorf("unexpected error_type: %v", fields["error_type"])
	}
	if fields["unit"] != "fortnights" {
		t.Errorf("unexpected unit: %v", fields["unit"])
	}
	if fields["error_code"] != CodeUnknownUnit {
		t.Errorf("unexpected error_code: %v", fields["error_code"])
	}
}

func TestSpanError(t *testing.T) {
	spanErr := NewSpanError("abc-123", "sprint", ErrDuplicateSpan)

	expectedErrMsg := `span operation failed for "sprint" (id: abc-123): span with this name already exists`
	if spanErr.Error() != expectedErrMsg {
		t.Errorf("SpanError.Error() = %s, want %s", spanErr.Error(), expectedErrMsg)
	}

	if !IsDuplicateSpanError(spanErr) {
		t.Error("IsDuplicateSpanError should recognize a wrapped duplicate span error")
	}
	if IsSpanNotFoundError(spanErr) {
		t.Error("IsSpanNotFoundError should not match a duplicate span error")
	}

	var typed *SpanError
	if !errors.As(spanErr, &typed) {
		t.Fatal("SpanError should be retrievable with errors.As")
	}
	fields := typed.LogFields()
	if fields["span_id"] != "abc-123" {
		t.Errorf("unexpected span_id: %v", fields["span_id"])
	}
	if fields["error_code"] != CodeDuplicateSpan {
		t.Errorf("unexpected error_code: %v", fields["error_code"])
	}
}
