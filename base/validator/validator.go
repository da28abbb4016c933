package validator

import (
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const solanaAddressTag = "solana_address"

var (
	defaultOnce sync.Once
	defaultV    *validator.Validate
)

// IsValidAddress reports whether address is a base58 encoded 32 byte public key
func IsValidAddress(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return err == nil
}

// New returns a validator with the solana_address tag registered
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(solanaAddressTag, func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	return v
}

// Default is a shared New() instance
func Default() *validator.Validate {
	defaultOnce.Do(func() {
		defaultV = New()
	})
	return defaultV
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
