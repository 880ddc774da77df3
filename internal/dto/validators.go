package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var cabinClasses = map[string]struct{}{
	"economy":         {},
	"premium_economy": {},
	"business":        {},
	"first":           {},
}

// RegisterValidators installs the custom binding rules on gin's validator engine.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("cabin", func(fl validator.FieldLevel) bool {
		_, ok := cabinClasses[strings.ToLower(fl.Field().String())]
		return ok
	})
}
