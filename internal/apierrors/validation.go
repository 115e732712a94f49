package apierrors

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// buildValidationMessage joins every field failure into one message
func buildValidationMessage(validationErrs validator.ValidationErrors) string {
	if len(validationErrs) == 0 {
		return "Invalid request"
	}

	if len(validationErrs) == 1 {
		return getValidationMessage(validationErrs[0])
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, getValidationMessage(fieldErr))
	}
	return "Validation failed: " + strings.Join(messages, "; ")
}

func getValidationMessage(fieldErr validator.FieldError) string {
	field := fieldPath(fieldErr)
	param := fieldErr.Param()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, sized(fieldErr.Kind(), param))
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, sized(fieldErr.Kind(), param))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	case "datetime":
		// Layout 2006-01-02 is the only one request bodies use
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fieldErr.Tag())
	}
}

// sized phrases a min/max bound by what is being measured
func sized(kind reflect.Kind, param string) string {
	switch kind {
	case reflect.String:
		return param + " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		if param == "1" {
			return "1 entry"
		}
		return param + " entries"
	default:
		return param
	}
}

// fieldPath renders the failing field the way clients send it, e.g.
// PlaceOrderRequest.Items[1].Quantity becomes items[1].quantity.
func fieldPath(fieldErr validator.FieldError) string {
	ns := fieldErr.StructNamespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	if ns == "" {
		ns = fieldErr.StructField()
	}

	parts := strings.Split(ns, ".")
	for i, part := range parts {
		name, index, _ := strings.Cut(part, "[")
		parts[i] = snakeCase(name)
		if index != "" {
			parts[i] += "[" + index
		}
	}
	return strings.Join(parts, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Break before a new word, keeping acronyms like ID together
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
