package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/jonathan/resume-builder/internal/types"
)

// ErrSessionExpired indicates a valid token whose session is gone.
var ErrSessionExpired = errors.New("session expired")

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		unknownField *types.UnknownFieldError
		valueKind    *types.ValueKindError
		invalid      *ErrValidation
		schemaErr    *schemas.ValidationError
		suggestErr   *suggest.Error
		exportErr    *export.Error
	)

	switch {
	case errors.As(err, &unknownField), errors.As(err, &valueKind),
		errors.As(err, &invalid), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &suggestErr), errors.As(err, &exportErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and writes it. Schema failures carry their field list.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		s.jsonResponse(w, status, map[string]any{"error": err.Error(), "details": schemaErr.Errors})
		return
	}
	s.errorResponse(w, status, err.Error())
}
