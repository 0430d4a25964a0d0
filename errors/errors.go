package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error type carried across layer boundaries.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// CodeOf returns the ErrorCode of err if it is an AppError.
func CodeOf(err error) (ErrorCode, bool) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code, true
	}
	return ErrorCode_INTERNAL, false
}

// IsCode reports whether err carries the given ErrorCode.
func IsCode(err error, code ErrorCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// Record-level errors. The archive loader catches these per record, logs the
// index and the reason, and skips the record.

func ErrMissingField(field string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MISSING_FIELD,
		Message:  fmt.Sprintf("Missing required field: %s", field),
	}.WithDetail("field", field)
}

func ErrInvalidDate(dateStr string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_DATE,
		Message:  fmt.Sprintf("Invalid date format: %s", dateStr),
	}.WithDetail("date", dateStr)
}

func ErrInvalidEntity(entity string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ENTITY,
		Message:  fmt.Sprintf("Invalid %s", entity),
	}.WithDetail("entity", entity)
}

// Archive-level errors. These abort the entire load and propagate to the caller.

func ErrArchiveNotFound(source string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_ARCHIVE_NOT_FOUND,
		Message:  "Archive file not found",
	}.WithDetail("source", source)
}

func ErrArchiveParse(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_ARCHIVE_PARSE,
		Message:  "Archive is not valid JSON",
	}
}

func ErrInvalidArchive(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARCHIVE,
		Message:  message,
	}
}

func ErrArchiveFetchFailed(source string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_ARCHIVE_FETCH_FAILED,
		Message:  "Failed to fetch remote archive",
	}.WithDetail("source", source)
}

func ErrExportFailed(format string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXPORT_FAILED,
		Message:  "Failed to export data",
	}.WithDetail("format", format)
}
