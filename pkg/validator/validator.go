package validator

import (
	"fmt"
	"strings"

	"github.com/davidmoltin/command-center/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// notblank rejects strings that are empty after trimming whitespace
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "facet", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseFacet(fl.Field().String())
		return ok
	})

	return &Validator{
		validate: v,
	}
}

// mustRegister panics when a built-in tag cannot be registered
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validator: register %q: %v", tag, err))
	}
}

// Validate validates a struct
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// RegisterValidation adds a custom validation tag
func (v *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return v.validate.RegisterValidation(tag, fn)
}

// ValidateVar validates a single variable
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	if err := v.validate.Var(field, tag); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError formats validation errors into a readable message
func (v *Validator) formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			messages = append(messages, formatFieldError(e))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
	}
	return err
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "required_without":
		return fmt.Sprintf("%s is required when %s is missing", field, e.Param())
	case "ne":
		return fmt.Sprintf("%s must not be %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "facet":
		return fmt.Sprintf("%s must be a filter facet (product, region, plant, sku, supplier)", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}

// DefaultValidator is the global validator instance
var DefaultValidator = New()

// Validate validates a struct using the default validator
func Validate(i interface{}) error {
	return DefaultValidator.Validate(i)
}

// ValidateVar validates a single variable using the default validator
func ValidateVar(field interface{}, tag string) error {
	return DefaultValidator.ValidateVar(field, tag)
}
