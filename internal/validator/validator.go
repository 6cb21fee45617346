// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// strictEmailRegex requires a local part, an @, a domain, and a TLD.
// Gin's built-in "email" tag accepts addresses without a TLD (e.g. "a@b"),
// which the registration contract rejects.
var strictEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("strict_email", validateStrictEmail)
	}
}

func validateStrictEmail(fl validator.FieldLevel) bool {
	return strictEmailRegex.MatchString(fl.Field().String())
}
