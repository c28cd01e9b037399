package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"tavola/config"
	"tavola/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerDomainValidation delegates to a Validate(*config.Config) error
// method on the field's type, so enumerations consumed from business
// configuration are checked against the running config.
func registerDomainValidation(cfg *config.Config) val.Func {
	return func(fl val.FieldLevel) bool {
		method := fl.Field().MethodByName("Validate")
		if !method.IsValid() {
			return false
		}

		result := method.Call([]reflect.Value{reflect.ValueOf(cfg)})

		return result[0].IsNil()
	}
}

// registerPhoneValidation accepts digits with common separators and an
// optional leading "+".
func registerPhoneValidation(fl val.FieldLevel) bool {
	digits := 0

	for i, r := range fl.Field().String() {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0, r == ' ', r == '-', r == '(', r == ')', r == '.':
		default:
			return false
		}
	}

	return digits > 0
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	custom := map[string]val.Func{
		"tavola": registerDomainValidation(config.Get()),
		"phone":  registerPhoneValidation,
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body from r into data and validates the result.
// Both decode and validation failures are returned as 400s.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct checks the validate tags on data, reporting every failing
// field in one message.
func ValidateStruct[T any](data *T) error {
	return asBadRequest(validate.Struct(data))
}

// ValidateVar checks a single value against tag.
func ValidateVar(field any, tag string) error {
	return asBadRequest(validate.Var(field, tag))
}

func asBadRequest(err error) error {
	if err == nil {
		return nil
	}

	return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
}
