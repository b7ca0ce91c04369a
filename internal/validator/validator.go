package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// difficulties lists the allowed tour difficulty values.
var difficulties = map[string]bool{
	"easy":      true,
	"medium":    true,
	"difficult": true,
}

// validateDifficulty validates that a string is an allowed tour difficulty
func validateDifficulty(fl validator.FieldLevel) bool {
	return difficulties[fl.Field().String()]
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("difficulty", validateDifficulty)
	}
}
