package config

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for presets.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("contrast_mode", func(fl validator.FieldLevel) bool {
			_, err := ParseContrastMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("letter_spacing_mode", func(fl validator.FieldLevel) bool {
			_, err := ParseLetterSpacingMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("line_height_mode", func(fl validator.FieldLevel) bool {
			_, err := ParseLineHeightMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("font_size_preset", func(fl validator.FieldLevel) bool {
			_, err := ParseFontSizePreset(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
