package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return entity.Category(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("practice_method", func(fl validator.FieldLevel) bool {
			return entity.PracticeMethod(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("practice_period", func(fl validator.FieldLevel) bool {
			return entity.PracticePeriod(fl.Field().String()).Target() > 0
		})
	})
}

// validateStruct runs the validator and folds field errors into one
// ErrValidation.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fieldErrs := make([]error, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fieldErrs = append(fieldErrs, fieldErr)
		}
		return fmt.Errorf("%w: %w", errorvalues.ErrValidation, errors.Join(fieldErrs...))
	}
	return errors.New("validation unexpected error: " + err.Error())
}
