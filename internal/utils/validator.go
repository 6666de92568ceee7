// internal/utils/validator.go
package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("slug", validateSlug)
	validate.RegisterValidation("entity_type", validateEntityType)
	validate.RegisterValidation("sluggable_type", validateSluggableType)
}

// ValidateStruct checks s against its validate tags. Failures come back as
// *apperror.ValidationError with one entry per rejected field.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := GetValidationErrors(err)
	if len(fields) == 0 {
		return err
	}
	return &apperror.ValidationError{Message: fields[0].Message, Fields: fields}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateSlug(fl validator.FieldLevel) bool {
	return IsValidSlug(fl.Field().String())
}

func validateEntityType(fl validator.FieldLevel) bool {
	return models.EntityType(fl.Field().String()).Valid()
}

func validateSluggableType(fl validator.FieldLevel) bool {
	return models.EntityType(fl.Field().String()).Sluggable()
}

// Validation tags for common fields
type ValidationError = apperror.FieldError

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   e.Field(),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return e.Field() + " must be at least " + e.Param() + " characters"
		}
		return e.Field() + " must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return e.Field() + " must be at most " + e.Param() + " characters"
		}
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "nefield":
		return e.Field() + " must differ from " + e.Param()
	case "slug":
		return e.Field() + " must contain only lowercase letters, digits and single hyphens"
	case "entity_type":
		return e.Field() + " must be one of: product, category, other"
	case "sluggable_type":
		return e.Field() + " must be one of: product, category"
	case "len":
		return e.Field() + " must have length " + e.Param()
	case "hexadecimal":
		return e.Field() + " must be a hexadecimal id"
	default:
		return e.Field() + " is invalid"
	}
}
