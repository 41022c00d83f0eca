package utils

import (
	"encoding/json"
	"net/http"
)

// Known error codes mapped to friendly messages. Unknown codes fall back to
// the raw error message.
const (
	CodePageNotFound    = "PAGE_NOT_FOUND"
	CodeProductNotFound = "PRODUCT_NOT_FOUND"
	CodeMissingFields   = "MISSING_FIELDS"
	CodeUploadFailed    = "UPLOAD_FAILED"
	CodeInvalidParam    = "INVALID_PARAM"
	CodeInternal        = "INTERNAL_ERROR"
)

// DictionaryEntry pairs an HTTP status with a friendly message
type DictionaryEntry struct {
	Status  int
	Message string
}

// ErrorsDictionary maps known error codes to friendly messages
var ErrorsDictionary = map[string]DictionaryEntry{
	CodePageNotFound:    {Status: http.StatusNotFound, Message: "The requested page was not found"},
	CodeProductNotFound: {Status: http.StatusNotFound, Message: "Product not found"},
	CodeMissingFields:   {Status: http.StatusBadRequest, Message: "Required fields are missing"},
	CodeUploadFailed:    {Status: http.StatusBadRequest, Message: "The file could not be uploaded"},
	CodeInvalidParam:    {Status: http.StatusNotFound, Message: "Invalid request parameter"},
	CodeInternal:        {Status: http.StatusInternalServerError, Message: "Internal server error"},
}

// LookupError resolves a known error code, falling back to a 500 with the
// given message when the code is not in the dictionary.
func LookupError(code, fallback string) DictionaryEntry {
	if entry, ok := ErrorsDictionary[code]; ok {
		return entry
	}
	return DictionaryEntry{Status: http.StatusInternalServerError, Message: fallback}
}

// ErrorHandler handles all error responses
type ErrorHandler struct{}

// ErrorResponse represents an error response structure
type ErrorResponse struct {
	Status  int           `json:"status"`
	Message string        `json:"message"`
	Errors  []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// HandleError sends a generic error response
func (h *ErrorHandler) HandleError(w http.ResponseWriter, code int, message string) {
	response, _ := json.Marshal(ErrorResponse{
		Status:  code,
		Message: message,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// HandleKnownError sends the dictionary response for a known error code
func (h *ErrorHandler) HandleKnownError(w http.ResponseWriter, code string) {
	entry := LookupError(code, "Internal server error")
	h.HandleError(w, entry.Status, entry.Message)
}

// HandleValidationError sends a validation error response
func (h *ErrorHandler) HandleValidationError(w http.ResponseWriter, errors []ErrorDetail) {
	response, _ := json.Marshal(ErrorResponse{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  errors,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	w.Write(response)
}

// HandleBadRequest sends a 400 Bad Request response
func (h *ErrorHandler) HandleBadRequest(w http.ResponseWriter, message string) {
	h.HandleError(w, http.StatusBadRequest, message)
}

// HandleUnauthorized sends a 401 Unauthorized response
func (h *ErrorHandler) HandleUnauthorized(w http.ResponseWriter, message string) {
	h.HandleError(w, http.StatusUnauthorized, message)
}

// HandleForbidden sends a 403 Forbidden response
func (h *ErrorHandler) HandleForbidden(w http.ResponseWriter, message string) {
	h.HandleError(w, http.StatusForbidden, message)
}

// HandleNotFound sends a 404 Not Found response
func (h *ErrorHandler) HandleNotFound(w http.ResponseWriter, message string) {
	h.HandleError(w, http.StatusNotFound, message)
}

// HandleInternalError sends a 500 Internal Server Error response
func (h *ErrorHandler) HandleInternalError(w http.ResponseWriter, message string) {
	h.HandleError(w, http.StatusInternalServerError, message)
}
