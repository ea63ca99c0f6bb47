package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// Custom binding validators for enum fields whose values contain spaces and
// so cannot be expressed with the oneof tag.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
			return domain.PaymentMethod(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
			return domain.AccountType(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("entrytype", func(fl validator.FieldLevel) bool {
			return domain.EntryType(fl.Field().String()).IsValid()
		})
	}
}
