package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatFieldName turns a json field name into a label: employee_email -> Employee Email.
func FormatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts validator output into an AppError describing
// only the first failing field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		humanReadableField := FormatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField).WithDetails(map[string]string{"field": e.Field()})
		default:
			return InvalidField(humanReadableField).WithDetails(map[string]string{"field": e.Field()})
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
