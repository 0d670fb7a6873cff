package validation

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Ticker symbols: letters, digits, dot, dash, slash (BRK.B, BF-B, BRK/A).
	symbolPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9./-]*$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("ticker", func(fl validator.FieldLevel) bool {
		return symbolPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("utf8text", func(fl validator.FieldLevel) bool {
		return utf8.ValidString(fl.Field().String())
	})
}

// Struct validates v against its `validate` struct tags and returns the
// first failure in a user-friendly form.
func Struct(v any) error {
	if v == nil {
		return errors.New("value cannot be nil")
	}
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gte":
			return fmt.Errorf("%s: must be >= %s", field, param)
		case "lte":
			return fmt.Errorf("%s: must be <= %s", field, param)
		case "nefield":
			return fmt.Errorf("%s: must differ from %s", field, param)
		case "ticker":
			return fmt.Errorf("%s: %q is not a valid ticker symbol", field, e.Value())
		case "utf8text":
			return fmt.Errorf("%s: not valid UTF-8 (re-encode the input as UTF-8)", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
