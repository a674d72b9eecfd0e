// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"

	"github.com/loanboard/cms/internal/apperror"
)

// Envelope is the failure shape of the API response envelope.
// Successful responses carry the same success/message members plus entity fields.
type Envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// Fields are the entity members of a successful envelope, e.g. {"category": c}.
type Fields map[string]interface{}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	render.Status(r, status)
	render.JSON(w, r, payload)
}

// Success writes a success envelope with an optional message and entity fields.
func Success(w http.ResponseWriter, r *http.Request, status int, message string, fields Fields) {
	body := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		body[k] = v
	}
	body["success"] = true
	if message != "" {
		body["message"] = message
	}
	JSON(w, r, status, body)
}

// OK writes a 200 response.
func OK(w http.ResponseWriter, r *http.Request, message string, fields Fields) {
	Success(w, r, http.StatusOK, message, fields)
}

// Created writes a 201 response.
func Created(w http.ResponseWriter, r *http.Request, message string, fields Fields) {
	Success(w, r, http.StatusCreated, message, fields)
}

// Fail writes an error envelope with the given status and message.
func Fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, r, status, Envelope{Success: false, Message: message})
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	Fail(w, r, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 response.
func Unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	Fail(w, r, http.StatusUnauthorized, message)
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, r *http.Request, message string) {
	Fail(w, r, http.StatusNotFound, message)
}

// Error maps err onto the error taxonomy and writes the matching envelope.
// Validation and conflict failures are 400, missing entities 404, everything else 500
// with the raw error message attached.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	e, ok := apperror.As(err)
	if !ok {
		logFailure(r, err)
		JSON(w, r, http.StatusInternalServerError, Envelope{
			Success: false,
			Message: "Server error",
			Error:   err.Error(),
		})
		return
	}

	switch e.Kind {
	case apperror.KindValidation:
		JSON(w, r, http.StatusBadRequest, Envelope{Success: false, Message: e.Message, Errors: e.Fields})
	case apperror.KindConflict:
		Fail(w, r, http.StatusBadRequest, e.Message)
	case apperror.KindNotFound:
		Fail(w, r, http.StatusNotFound, e.Message)
	default:
		logFailure(r, err)
		env := Envelope{Success: false, Message: e.Message}
		if e.Err != nil {
			env.Error = e.Err.Error()
		}
		JSON(w, r, http.StatusInternalServerError, env)
	}
}

func logFailure(r *http.Request, err error) {
	log.Error().
		Err(err).
		Str("request_id", chiMiddleware.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
}
