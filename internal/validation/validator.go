package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/buzzwords/internal/apperrors"
	"github.com/mrlokans/buzzwords/internal/entities"
)

// Validator wraps go-playground/validator and converts its failures into
// apperrors.Validation with one message per invalid field.
type Validator struct {
	v *validator.Validate
}

// New creates a validator with the "partofspeech" tag registered.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("partofspeech", func(fl validator.FieldLevel) bool {
		return entities.PartOfSpeech(fl.Field().String()).Valid()
	})

	return &Validator{v: v}
}

// Validate checks s against its validate tags.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperrors.Internal(err, "validate")
	}

	violations := make([]apperrors.FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		violations = append(violations, apperrors.FieldError{
			Field:   e.Field(),
			Message: friendlyMessage(e),
		})
	}
	return apperrors.Validation("Validation error", violations)
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "partofspeech":
		return fmt.Sprintf("%v is not a valid part of speech", e.Value())
	case "email":
		return e.Field() + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", e.Field(), e.Param())
	default:
		return e.Field() + " is invalid"
	}
}
