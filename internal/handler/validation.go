package handler

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"k8s.io/apimachinery/pkg/util/validation"
)

// dns1123Label validates that a field is a valid DNS-1123 label (lowercase
// alphanumerics and hyphens, at most 63 characters), the naming rule cluster
// names have to follow.
func dns1123Label(fl validator.FieldLevel) bool {
	return len(validation.IsDNS1123Label(fl.Field().String())) == 0
}

// RegisterValidation Inspiration: https://blog.logrocket.com/gin-binding-in-go-a-tutorial-with-examples/
func RegisterValidation() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("dns1123label", dns1123Label)
	}
	return fmt.Errorf("error getting validation engine")
}
