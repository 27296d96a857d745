package v1

import (
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators hooks domain validations into gin's binding engine.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("business_scale", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, scale := range domain.BusinessScales {
			if value == scale {
				return true
			}
		}
		return false
	})
}
