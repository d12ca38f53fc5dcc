package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/saragoldblat100/br-sales/internal/core/domain"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
			_, ok := domain.ParseCurrencyCode(fl.Field().String())
			return ok
		})
	})
}
