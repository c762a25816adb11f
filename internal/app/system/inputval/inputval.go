// Package inputval validates form input structs declared with `validate`
// struct tags (go-playground/validator syntax) and produces user-facing
// messages using the `label` tag as the field's display name.
//
// Example:
//
//	type newJobInput struct {
//		Title string `validate:"required,max=200" label:"Title"`
//		Type  string `validate:"required,oneof=Full-time Part-time" label:"Employment type"`
//	}
//
//	if result := inputval.Validate(input); result.HasErrors() {
//		data.SetError(result.First())
//		...
//	}
package inputval

import (
	"fmt"
	"net/mail"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their label tag so messages read naturally.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return v
}

// FieldError is one validation failure with a user-facing message.
type FieldError struct {
	Field   string
	Message string
}

// Result collects validation failures for one input struct.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any field failed validation.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first failure's message, or "".
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// Validate checks the input struct's `validate` tags and returns all failures.
func Validate(input interface{}) Result {
	err := validate.Struct(input)
	if err == nil {
		return Result{}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{Errors: []FieldError{{Field: "", Message: "Invalid input."}}}
	}

	res := Result{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		res.Errors = append(res.Errors, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return res
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", label)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL.", label)
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format.", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}

// IsValidEmail reports whether s is a plausible bare email address.
// Display-name forms ("Jane <jane@x.com>") and whitespace are rejected;
// single-label domains (user@localhost) are accepted for dev environments.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}
