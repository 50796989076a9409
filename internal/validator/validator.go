// Package validator wraps go-playground/validator so handlers get back a
// field -> message map that is ready to serialize into the response envelope.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries per-field messages for a rejected payload.
type ValidationError struct {
	Errors map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var msgs []string
	for field, msg := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validator wraps a configured validator.Validate instance.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator that reports JSON field names, not Go struct names.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate checks the struct's validate tags and returns *ValidationError on
// failure.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages[fe.Field()] = messageFor(fe)
	}
	return &ValidationError{Errors: messages}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed '%s' validation", fe.Tag())
	}
}
