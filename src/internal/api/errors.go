package api

import (
	"encoding/json"
	stderrors "errors"
	"mime"
	"net/http"
	"strings"

	"github.com/marthasimmons/airports-endpoint/src/internal/errors"
	"github.com/marthasimmons/airports-endpoint/src/internal/log"
)

// ErrorCode represents standard API error codes.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates malformed or invalid request data.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeNotFound indicates the requested airport was not found.
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeConflict indicates an icao collision.
	ErrCodeConflict ErrorCode = "conflict"

	// ErrCodeValidationFailed indicates a record failed validation.
	ErrCodeValidationFailed ErrorCode = "validation_failed"

	// ErrCodeInvalidRange indicates a page outside the directory.
	ErrCodeInvalidRange ErrorCode = "invalid_range"

	// ErrCodeInternalError indicates an internal server error.
	ErrCodeInternalError ErrorCode = "internal_error"
)

// APIError represents a structured API error response.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse wraps an APIError for JSON responses.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// NewAPIError creates a new APIError with the given code and message.
func NewAPIError(code ErrorCode, message string) APIError {
	return APIError{
		Code:    code,
		Message: message,
	}
}

// WriteError writes an error response. The body is the bare message unless the
// client asked for JSON.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, err APIError) {
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if encErr := json.NewEncoder(w).Encode(ErrorResponse{Error: err}); encErr != nil {
			log.Warnf("Failed to encode error response: %v", encErr)
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, wErr := w.Write([]byte(err.Message)); wErr != nil {
		log.Warnf("Failed to write error response: %v", wErr)
	}
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, r *http.Request, message string) {
	WriteError(w, r, http.StatusBadRequest, NewAPIError(ErrCodeInvalidRequest, message))
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, r *http.Request, message string) {
	WriteError(w, r, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}

// WriteDomainError maps a directory error onto the wire. Directory failures
// are all reported as 400 with the error's fixed message.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var derr *errors.Error
	if stderrors.As(err, &derr) {
		if code, ok := domainCodes[derr.Code]; ok {
			WriteError(w, r, http.StatusBadRequest, NewAPIError(code, derr.Message))
			return
		}
	}

	ierr := errors.NewInternalError("internal server error", err)
	log.Errorf("%v", ierr)
	WriteInternalError(w, r, ierr.Message)
}

var domainCodes = map[errors.ErrorCode]ErrorCode{
	errors.ErrCodeValidation:   ErrCodeValidationFailed,
	errors.ErrCodeDuplicateKey: ErrCodeConflict,
	errors.ErrCodeNotFound:     ErrCodeNotFound,
	errors.ErrCodeInvalidRange: ErrCodeInvalidRange,
}

func wantsJSON(r *http.Request) bool {
	if r == nil {
		return false
	}
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mediaType == "application/json" {
			return true
		}
	}
	return false
}
