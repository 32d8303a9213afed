// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/jobs"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrFileTooLarge indicates the uploaded file exceeds the size limit
type ErrFileTooLarge struct {
	MaxBytes int64
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("uploaded file exceeds the %d byte limit", e.MaxBytes)
}

// ErrUnreadableDocument indicates the upload decoded to no usable text
type ErrUnreadableDocument struct {
	Filename string
}

func (e *ErrUnreadableDocument) Error() string {
	return fmt.Sprintf("could not extract text from %s", e.Filename)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Upstream failures surface as 502 so clients can tell a broken request
// from a broken dependency.
func HTTPStatus(err error) int {
	var jobsErr *jobs.Error
	if errors.As(err, &jobsErr) {
		return http.StatusBadGateway
	}
	if errors.Is(err, ingestion.ErrUnsupportedFormat) {
		return http.StatusUnsupportedMediaType
	}
	if errors.Is(err, ingestion.ErrNoText) || errors.Is(err, jobs.ErrEmptyKeywords) {
		return http.StatusBadRequest
	}

	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrFileTooLarge:
		return http.StatusRequestEntityTooLarge
	case *ErrUnreadableDocument:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
