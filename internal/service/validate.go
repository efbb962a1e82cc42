// internal/service/validate.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// newValidator returns a validator that also knows the governorate and
// password tags. Empty values pass governorate so it can sit on optional
// fields.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("governorate", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || model.IsGovernorate(value)
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return strongPassword(fl.Field().String())
	})
	return v
}

// strongPassword requires the minimum length and at least one letter and one digit.
func strongPassword(password string) bool {
	if len([]rune(password)) < MinPasswordLength {
		return false
	}
	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}

// invalid wraps a validator failure so handlers can map it to a 400.
func invalid(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if fe.Tag() == "password" {
				return domain.ErrPasswordTooWeak
			}
			fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// containsFold reports whether any of fields contains keyword, ignoring case.
func containsFold(keyword string, fields ...string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), keyword) {
			return true
		}
	}
	return false
}
