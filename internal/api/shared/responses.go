package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// DataResponse is the envelope for every successful response. The payload
// always lives under the "data" key.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// PagedResponse is the envelope for list responses that carry a paging
// descriptor alongside the data.
type PagedResponse struct {
	Data   interface{} `json:"data"`
	Paging interface{} `json:"paging"`
}

// ErrorResponse is the envelope for every failed response. The message
// always lives under the "errors" key.
type ErrorResponse struct {
	Errors  string `json:"errors"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a successful response wrapping the payload in the
// standard data envelope.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	RespondWithJSON(w, r, status, DataResponse{Data: data})
}

// RespondWithPage writes a successful list response with a paging descriptor.
func RespondWithPage(w http.ResponseWriter, r *http.Request, status int, data, paging interface{}) {
	RespondWithJSON(w, r, status, PagedResponse{Data: data, Paging: paging})
}

// RespondWithError writes a JSON error response with the given status code
// and message. It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	errorResponse := ErrorResponse{
		Errors:  message,
		Code:    status,
		TraceID: traceID,
	}

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, errorResponse)
}

// RespondWithErrorAndLog writes a JSON error response and also logs the
// underlying error. Only the sanitized message reaches the client; the raw
// error goes to the log.
//
// Log level strategy:
// - 5xx errors: logged at ERROR level
// - 4xx errors: logged at DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	errorResponse := ErrorResponse{
		Errors:  userMessage,
		Code:    status,
		TraceID: traceID,
	}

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, errorResponse)
}
