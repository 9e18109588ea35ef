package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/ougirez/lwc/internal/domain"
	"github.com/ougirez/lwc/internal/pkg/constants"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).Valid()
	})
	return v
}

// Validator returns the validator shared by drafts and request binding.
func Validator() *validator.Validate {
	return validate
}

// Validate checks i against its struct tags. Failures wrap constants.ErrValidation.
func Validate(i any) error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrValidation, err.Error())
	}
	return nil
}

func derefOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !isBlank(item) {
			out = append(out, item)
		}
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
