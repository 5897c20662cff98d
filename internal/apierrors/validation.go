package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"voice-crm/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const malformedRequestMessage = "Invalid request format. Please check your JSON syntax."

// ValidationError sends a 400 for a failed ShouldBind call
func ValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		logger.Warn(observability.WithFields(c.Request.Context(), observability.Field{Key: "error", Value: err.Error()}), "request binding failed")
	}
	respond(c, http.StatusBadRequest, CodeInvalidInput, BindingMessage(err))
}

// BindingMessage describes a failed ShouldBind call in user facing terms
func BindingMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return malformedRequestMessage
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}

	switch len(messages) {
	case 0:
		return "Invalid request"
	case 1:
		return messages[0]
	default:
		return "Validation failed: " + strings.Join(messages, "; ")
	}
}

func fieldMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_without":
		return fmt.Sprintf("%s is required when %s is missing", field, fieldErr.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fieldErr.Tag())
	}
}
