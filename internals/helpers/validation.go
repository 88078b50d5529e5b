package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// NewValidator reports fields by their json name and knows the notblank tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// ValidateStruct returns nil when s is valid, otherwise the per-field messages.
func ValidateStruct(v *validator.Validate, s any) map[string][]string {
	if err := v.Struct(s); err != nil {
		return ValidationErrorMap(err)
	}
	return nil
}

func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["non_field_errors"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		out[field] = append(out[field], messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "uuid", "uuid4":
		return "Must be a valid UUID."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice. Expected one of: %s.", fmt.Sprint(fe.Value()), fe.Param())
	case "datetime":
		return fmt.Sprintf("Date has wrong format. Use %s.", fe.Param())
	case "gtfield":
		return fmt.Sprintf("Must be after %s.", fe.Param())
	case "dive":
		return "Invalid list element."
	default:
		return fmt.Sprintf("Failed on %q validation.", fe.Tag())
	}
}

// MergeFieldErrors appends src into dst and returns dst.
func MergeFieldErrors(dst, src map[string][]string) map[string][]string {
	if dst == nil {
		dst = map[string][]string{}
	}
	for k, v := range src {
		dst[k] = append(dst[k], v...)
	}
	return dst
}
