package controllers

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/danuwg/opcert_backend_v1/internal/cert"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// b64file: decodable base64 content, with or without a data URI prefix.
	_ = v.RegisterValidation("b64file", func(fl validator.FieldLevel) bool {
		content, err := cert.DecodeBase64(fl.Field().String())
		return err == nil && len(content) > 0
	})
	return v
}

// validationMessages flattens validator errors into one message per failing
// field so the client can show every problem at once.
func validationMessages(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "b64file":
			out = append(out, fmt.Sprintf("%s is not a valid base64 file", fe.Field()))
		case "required":
			out = append(out, fmt.Sprintf("%s is required", fe.Field()))
		default:
			out = append(out, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return out
}
