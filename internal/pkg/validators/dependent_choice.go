package validators

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// DependentChoice accepts an integer field only when its value is among the
// choices allowed for the current value of the integer sibling field.
func DependentChoice(sibling string, allowed func(sibling int64) []int64) validator.Func {
	return func(fl validator.FieldLevel) bool {
		parent := fl.Parent()
		if parent.Kind() == reflect.Ptr {
			parent = parent.Elem()
		}

		siblingField := parent.FieldByName(sibling)
		if !siblingField.IsValid() || !isInt(siblingField.Kind()) || !isInt(fl.Field().Kind()) {
			return false
		}

		value := fl.Field().Int()
		for _, choice := range allowed(siblingField.Int()) {
			if choice == value {
				return true
			}
		}
		return false
	}
}

func isInt(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}
