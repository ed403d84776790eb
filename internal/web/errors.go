package web

// errors.go provides unified error response handling for the web layer.
//
// The error flow:
//  1. Handler encounters an error and calls s.fail(w, r, err)
//  2. statusFor classifies the error into an HTTP status with errors.Is
//  3. The message and support code come from core.MapError
//  4. The technical error is logged with the request logger
//  5. The user message is rendered as JSON, or as an HTML partial for HTMX

import (
	"errors"
	"net/http"
	"strings"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/logging"
	"github.com/JonMunkholm/budget/internal/web/templates"
)

// ErrorResponse is the JSON body of every error response. Detail repeats
// the message under the key older clients read.
type ErrorResponse struct {
	Error   string `json:"error"`
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, core.ErrFileTooLarge), errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, core.ErrTooManyImports), errors.Is(err, core.ErrAIUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, core.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidInput),
		errors.Is(err, core.ErrConflict),
		errors.Is(err, core.ErrNotCSV),
		errors.Is(err, core.ErrDecode),
		errors.Is(err, core.ErrNoColumnsDetected),
		errors.Is(err, core.ErrInvalidCSV):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail responds with the status statusFor picks for err.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.respondError(w, r, err, statusFor(err))
}

// respondError logs err and writes the user-facing message in the format
// the client expects.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		err = core.ErrFileTooLarge
	}
	userMsg := core.MapError(err)

	logger := logging.FromContext(r.Context())
	attrs := []any{
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error("request error", attrs...)
	} else {
		logger.Warn("request error", attrs...)
	}

	if isHTMX(r) {
		renderErrorPartial(w, r, userMsg, statusCode)
		return
	}
	writeJSONStatus(w, statusCode, ErrorResponse{
		Error:   userMsg.Message,
		Detail:  userMsg.Message,
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	})
}

// renderErrorPartial renders an HTMX-compatible error fragment.
func renderErrorPartial(w http.ResponseWriter, r *http.Request, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	templates.ErrorAlert(msg.Message, msg.Action, msg.Code).Render(r.Context(), w)
}

// isHTMX checks if the request is an HTMX request.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsHTML reports whether a browser asked for a page rather than JSON.
func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// badRequest is an invalid-input error with a caller-facing message.
func badRequest(msg string) error {
	return &core.DomainError{Kind: core.ErrInvalidInput, Msg: msg}
}
