package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// FieldError names one violating field and why it was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// InvalidRecordError reports schema violations found before a record
// reaches the store. Handlers translate it into a 400 response.
type InvalidRecordError struct {
	Kind   string
	Fields []FieldError
}

func (e *InvalidRecordError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, field.Field+" "+field.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Kind, strings.Join(parts, "; "))
}

// Validate checks a record against its declared constraints, reporting
// every violating field at once.
func Validate(kind string, record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return err
	}

	fields := make([]FieldError, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, FieldError{
			Field:  violation.Field(),
			Reason: reasonFor(violation),
		})
	}
	return &InvalidRecordError{Kind: kind, Fields: fields}
}

func reasonFor(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte":
		return "must be at least " + violation.Param()
	case "lte":
		return "must be at most " + violation.Param()
	default:
		return "failed " + violation.Tag() + " validation"
	}
}
