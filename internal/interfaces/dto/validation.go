package dto

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/orris-inc/warden/internal/shared/opcode"
)

// RegisterValidators installs the custom binding tags on gin's validator.
// It must run before the first request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("opcode", validateOpCode); err != nil {
		return fmt.Errorf("failed to register opcode validator: %w", err)
	}
	return nil
}

func validateOpCode(fl validator.FieldLevel) bool {
	return opcode.Valid(fl.Field().String())
}
