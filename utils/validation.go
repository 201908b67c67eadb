package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"go-storefront/source"
)

// FormatValidationError formats validation errors into user-friendly messages
func FormatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", err.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", err.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", err.Param())
	case "url":
		return "Invalid URL"
	case "category":
		return fmt.Sprintf("Unknown category %q", err.Value())
	default:
		return fmt.Sprintf("Validation failed on %s", err.Tag())
	}
}

// ValidationDetails lists the field errors wrapped in err. Errors that carry no
// field information produce a single detail with the error text.
func ValidationDetails(err error) []ErrorDetail {
	if err == nil {
		return nil
	}

	prefix := ""
	var verr *source.ValidationError
	if errors.As(err, &verr) && verr.Index >= 0 {
		prefix = fmt.Sprintf("[%d].", verr.Index)
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return []ErrorDetail{{Message: err.Error()}}
	}

	details := make([]ErrorDetail, 0, len(fields))
	for _, f := range fields {
		details = append(details, ErrorDetail{
			Field:   prefix + f.Namespace(),
			Message: FormatValidationError(f),
		})
	}
	return details
}
