package apierrors

import (
	"context"
	"errors"
	"net/http"

	"voice-crm/internal/clients/hubspot"
	crmProcessor "voice-crm/internal/crm/processor"
	intentProcessor "voice-crm/internal/intent/processor"
	transcriptionProcessor "voice-crm/internal/transcription/processor"
	uploadsProcessor "voice-crm/internal/uploads/processor"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeContactNotFound     = "CONTACT_NOT_FOUND"
	CodeUpstreamError       = "UPSTREAM_ERROR"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeNotConfigured       = "NOT_CONFIGURED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// APIError is an error already translated to an HTTP status and client message
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

var invalidInputErrors = []error{
	crmProcessor.ErrEmailRequired,
	crmProcessor.ErrContactReferenceRequired,
	crmProcessor.ErrNoteBodyRequired,
	crmProcessor.ErrDealNameRequired,
	crmProcessor.ErrTaskSubjectRequired,
	crmProcessor.ErrTaskDueRequired,
	crmProcessor.ErrInvalidDueDate,
	crmProcessor.ErrInvalidCloseDate,
	crmProcessor.ErrInvalidPriority,
	intentProcessor.ErrEmptyTranscript,
	intentProcessor.ErrUnknownTool,
	intentProcessor.ErrInvalidCommand,
	transcriptionProcessor.ErrAudioURLRequired,
	transcriptionProcessor.ErrUnsupportedAudioURL,
	transcriptionProcessor.ErrEmptyAudio,
	uploadsProcessor.ErrFileRequired,
}

// MapError converts processor and client errors to an APIError. Unknown
// errors become a sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	for _, target := range invalidInputErrors {
		if errors.Is(err, target) {
			return &APIError{StatusCode: http.StatusBadRequest, Code: CodeInvalidInput, Message: err.Error(), Err: err}
		}
	}

	switch {
	case errors.Is(err, crmProcessor.ErrContactNotFound):
		return &APIError{StatusCode: http.StatusNotFound, Code: CodeContactNotFound, Message: err.Error(), Err: err}
	case errors.Is(err, intentProcessor.ErrSynthesisDisabled):
		return &APIError{StatusCode: http.StatusServiceUnavailable, Code: CodeNotConfigured, Message: "Summarization is not configured", Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &APIError{StatusCode: http.StatusServiceUnavailable, Code: CodeUpstreamUnavailable, Message: "Upstream call timed out", Err: err}
	}

	if upstream, ok := hubspot.IsAPIError(err); ok {
		if upstream.StatusCode == http.StatusTooManyRequests || upstream.StatusCode >= http.StatusInternalServerError {
			return &APIError{StatusCode: http.StatusServiceUnavailable, Code: CodeUpstreamUnavailable, Message: "CRM is unavailable, try again later", Err: err}
		}
		return &APIError{StatusCode: http.StatusBadGateway, Code: CodeUpstreamError, Message: "CRM rejected the request", Err: err}
	}

	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}

// RespondWithError maps err and writes the response
func RespondWithError(c *gin.Context, err error) {
	apiErr := MapError(err)
	if apiErr == nil {
		return
	}

	switch apiErr.StatusCode {
	case http.StatusBadRequest:
		BadRequest(c, apiErr.Code, apiErr.Message)
	case http.StatusNotFound:
		NotFound(c, apiErr.Code, apiErr.Message)
	case http.StatusBadGateway:
		BadGateway(c, apiErr.Code, apiErr.Message, err)
	case http.StatusServiceUnavailable:
		ServiceUnavailable(c, apiErr.Code, apiErr.Message, err)
	case http.StatusInternalServerError:
		InternalError(c, err)
	default:
		respond(c, apiErr.StatusCode, apiErr.Code, apiErr.Message)
	}
}
