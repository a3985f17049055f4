package entities

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared struct validator with the domain tags registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("cpf", CPFValidator)
	})
	return validate
}

// CPFValidator is the validator.Func behind the `cpf` tag.
func CPFValidator(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return ValidCPF(s)
}

// NormalizeCPF strips everything but digits ("123.456.789-09" -> "12345678909").
func NormalizeCPF(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF checks length and both check digits. Repeated-digit CPFs are rejected.
func ValidCPF(raw string) bool {
	cpf := NormalizeCPF(raw)
	if len(cpf) != 11 {
		return false
	}
	allSame := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	digit := func(n int) byte {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(cpf[i]-'0') * (n + 1 - i)
		}
		d := (sum * 10) % 11
		if d == 10 {
			d = 0
		}
		return byte(d) + '0'
	}
	return digit(9) == cpf[9] && digit(10) == cpf[10]
}
