package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/brandkit/internal/color"
	brandkiterrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return color.IsHex(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig checks required fields and the base color format. Unknown
// sector, style and personality values are accepted; generation falls back to
// documented defaults for them.
func ValidateConfig(cfg *DesignSystemConfig) error {
	if cfg == nil {
		return brandkiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if strings.TrimSpace(cfg.Name) == "" {
		return brandkiterrors.NewValidationError("name", "name must not be blank", nil)
	}

	// name and version end up in generated file headers.
	if strings.ContainsFunc(cfg.Name, unicode.IsControl) {
		return brandkiterrors.NewValidationError("name", "name must be a single line without control characters", nil)
	}
	if strings.ContainsFunc(cfg.Version, unicode.IsControl) {
		return brandkiterrors.NewValidationError("version", "version must be a single line without control characters", nil)
	}

	return nil
}

// convertValidationError normalizes validator errors into brandkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := ve.Field()
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "hexcolor6" {
			msg = fmt.Sprintf("%s %q is not a #rrggbb color", field, ve.Value())
		}
		return brandkiterrors.NewValidationError(field, msg, err)
	}

	return brandkiterrors.NewValidationError("config", err.Error(), err)
}
