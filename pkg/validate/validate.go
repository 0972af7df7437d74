package validate

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		_ = instance.RegisterValidation("referral_code", func(fl validator.FieldLevel) bool {
			return IsReferralCode(fl.Field().String())
		})
		_ = instance.RegisterValidation("decimal_positive", func(fl validator.FieldLevel) bool {
			return isPositiveDecimal(fl.Field().String())
		})
		_ = instance.RegisterValidation("decimal_nonnegative", func(fl validator.FieldLevel) bool {
			return isNonNegativeDecimal(fl.Field().String())
		})
	})
	return instance
}

// Struct checks the validate tags of a request DTO and flattens the failures into one message.
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
