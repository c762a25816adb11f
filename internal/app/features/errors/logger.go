// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with user-facing error pages so
// handlers can report a failure once and be done with it. The log line gets
// the internal detail (err, method, path); the user gets userMsg and a way
// back.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs an internal failure and renders the server-error page.
func (el *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	el.log.Error(logMsg, requestFields(r, err)...)
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs a client error at warn level and renders the
// bad-request page.
func (el *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	el.log.Warn(logMsg, requestFields(r, err)...)
	RenderBadRequest(w, r, userMsg, backURL)
}

// HTMXLogServerError logs an internal failure and answers an HTMX request
// with a small error fragment instead of a full page swap.
func (el *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	el.log.Error(logMsg, requestFields(r, err)...)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<div class="alert alert-error">` + userMsg + `</div>`))
}

func requestFields(r *http.Request, err error) []zap.Field {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	return fields
}
