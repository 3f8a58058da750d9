package validation

import (
	"sync"

	"go-timeoff/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(apperror.JSONTagName)
	})
	return validate
}

// Struct validates v and returns an AppError for the first failing field.
func Struct(v any) error {
	if err := instance().Struct(v); err != nil {
		return apperror.MapValidationError(err)
	}
	return nil
}

// Var validates a single value against tag, e.g. Var("a@b.c", "email").
func Var(field any, tag string) error {
	return instance().Var(field, tag)
}
