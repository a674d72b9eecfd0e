// Package validation wraps go-playground/validator and reports failures as apperror field errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/loanboard/cms/internal/apperror"
)

// Message is the top-level message of every validation failure.
const Message = "Validation failed"

var (
	validate = newValidator()

	oneOfParam = regexp.MustCompile(`'[^']*'|\S+`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report JSON field names so messages match the request payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	return v
}

// Struct validates data and returns an apperror of kind Validation listing every failed field.
func Struct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}

	return apperror.Validation(Message, fields...)
}

// Field builds a single-field validation error.
func Field(field, tag, msg string) error {
	return apperror.Validation(Message, apperror.FieldError{Field: field, Tag: tag, Message: msg})
}

func message(fe validator.FieldError) string {
	label := Label(fe.Field())

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return label + " cannot be empty"
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "gte":
		return label + " must be a positive number"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(OneOfValues(fe.Param()), ", "))
	case "url", "http_url":
		return label + " must be a valid URL"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// OneOfValues splits a oneof parameter, honouring single-quoted values with spaces.
func OneOfValues(param string) []string {
	matches := oneOfParam.FindAllString(param, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.Trim(m, "'"))
	}
	return out
}

// Label turns a camelCase JSON name into a sentence-case label ("loanTitle" -> "Loan title").
func Label(name string) string {
	if name == "" {
		return name
	}

	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
