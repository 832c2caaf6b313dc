package utils

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("event_category", validateEventCategory)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateEventCategory(fl validator.FieldLevel) bool {
	category := fl.Field().String()
	supported := map[string]bool{
		"cleanup":    true,
		"plantation": true,
		"donation":   true,
		"education":  true,
		"healthcare": true,
		"other":      true,
	}
	return supported[category]
}
