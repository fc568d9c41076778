// Package validator plugs go-playground/validator into echo with JSON field names in messages.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"pricealert/internal/domain/entity"
	"pricealert/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New builds a validator that reports json tag names and knows the alert enums.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	_ = v.RegisterValidation("channel", func(fl playground.FieldLevel) bool {
		return entity.NotificationChannel(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("hhmm", func(fl playground.FieldLevel) bool {
		_, err := entity.ParseClock(fl.Field().String())

		return err == nil
	})

	return &Validator{validate: v}
}

// Validate runs struct validation and flattens failures into one readable message.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return &Error{Fields: fieldErrs, msg: strings.Join(msgs, "; ")}
}

// Error carries the failing fields alongside a joined message.
type Error struct {
	Fields playground.ValidationErrors
	msg    string
}

func (e *Error) Error() string {
	return e.msg
}

func describe(fe playground.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "channel":
		return fmt.Sprintf("%s has unknown channel %q", field, fe.Value())
	case "hhmm":
		return field + " must be HH:MM"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
