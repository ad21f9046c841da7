package dto

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var birthDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator devuelve la instancia compartida con las reglas propias registradas:
// notblank, digits (solo 0-9), birthdate (AAAA-MM-DD) y price (decimal no negativo).
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v, err := newValidator()
		if err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

var customRules = map[string]validator.Func{
	"notblank": func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	},
	"digits": func(fl validator.FieldLevel) bool {
		return isDigits(fl.Field().String())
	},
	"birthdate": func(fl validator.FieldLevel) bool {
		return birthDateRe.MatchString(fl.Field().String())
	},
	"price": func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	},
}

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := registerRules(v, customRules); err != nil {
		return nil, err
	}
	return v, nil
}

func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("registrar regla %q: %w", tag, err)
		}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
