package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	Validate *validator.Validate

	slugRegexp     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	usernameRegexp = regexp.MustCompile(`^[\w.@+-]+$`)
)

func InitValidator() {
	if Validate != nil {
		return
	}
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegexp.MatchString(fl.Field().String())
	})
	Validate = v
}
