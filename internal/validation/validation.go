package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"kakeibo-dashboard/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a tagged input struct and converts validator failures
// into domain.ValidationErrors so every field violation reaches the client
// in one response.
func Struct(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	out := &domain.ValidationErrors{}
	for _, fe := range validationErrors {
		out.Fields = append(out.Fields, domain.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}
