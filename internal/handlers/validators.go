package handlers

import (
	"github.com/birikimsoft/defter_backend/internal/utils/dateutil"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators extends gin's binding validator with
// application-specific rules.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// displaydate accepts DD.MM.YYYY only.
	_ = v.RegisterValidation("displaydate", func(fl validator.FieldLevel) bool {
		return dateutil.ParseDisplayDate(fl.Field().String()) != nil
	})
}
