// Package validators builds the struct validator shared by domain entities
// and translates its failures into per-field form errors.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
	"github.com/go-playground/validator/v10"
)

// Rule is a custom validation registered under Tag
type Rule struct {
	Tag  string
	Func validator.Func
	// Choice marks rules that restrict a value to an enumerated set.
	Choice bool
}

// New returns a validator reporting fields by their mapstructure name, with rules registered
func New(rules ...Rule) (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(formFieldName)

	for _, rule := range rules {
		if err := validate.RegisterValidation(rule.Tag, rule.Func); err != nil {
			return nil, fmt.Errorf("failed to register custom validator %s: %w", rule.Tag, err)
		}
	}
	return validate, nil
}

// ToFormErrors converts the result of validate.Struct into per-field form
// errors. Errors that are not field errors are reported under the empty name.
func ToFormErrors(err error, rules ...Rule) forms.Errors {
	errs := forms.Errors{}
	if err == nil {
		return errs
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs.Add("", err.Error())
		return errs
	}

	for _, fieldErr := range validationErrors {
		errs.Add(fieldErr.Field(), message(fieldErr, rules))
	}
	return errs
}

// Summarize flattens validation failures into one error in the
// "Field: x, Tag: y" form used by entity validation.
func Summarize(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}

func message(fieldErr validator.FieldError, rules []Rule) string {
	for _, rule := range rules {
		if rule.Tag == fieldErr.Tag() && rule.Choice {
			return forms.MsgInvalidChoice
		}
	}

	switch fieldErr.Tag() {
	case "required", "required_if", "required_with":
		return forms.MsgRequired
	case "oneof":
		return forms.MsgInvalidChoice
	case "min", "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fieldErr.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fieldErr.Param())
	case "max", "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fieldErr.Param())
	case "email":
		return "Enter a valid email address."
	default:
		return forms.MsgInvalidValue
	}
}

func formFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}
