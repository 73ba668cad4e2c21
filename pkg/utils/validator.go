package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	countryCodeRe = regexp.MustCompile(`^\+\d{1,4}$`)
	phoneRe       = regexp.MustCompile(`^\d{7,15}$`)
)

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("country_code", validateCountryCode)
	_ = validate.RegisterValidation("phone", validatePhone)
	_ = validate.RegisterValidation("experience_level", validateExperienceLevel)
	_ = validate.RegisterValidation("task_priority", validateTaskPriority)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCountryCode(fl validator.FieldLevel) bool {
	return countryCodeRe.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRe.MatchString(fl.Field().String())
}

func validateExperienceLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "junior", "mid", "senior", "expert":
		return true
	}
	return false
}

func validateTaskPriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}
