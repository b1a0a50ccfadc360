package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"mbanq-accounts/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	pincodeRe     = regexp.MustCompile(`^[0-9]{6}$`)
	passcodeRe    = regexp.MustCompile(`^[0-9]{6}$`)
	phoneNumberRe = regexp.MustCompile(`^[0-9]{6,15}$`)
	dialCodeRe    = regexp.MustCompile(`^\+[0-9]{1,4}$`)
)

const passwordSpecials = "@$!%*?&"

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := Register(v); err != nil {
			panic(err)
		}
	}
}

// Register installs the custom tags on v. Tag names must not collide with
// validator's built-in tags or aliases, which take precedence.
func Register(v *validator.Validate) error {
	custom := []struct {
		tag string
		fn  validator.Func
	}{
		{"pincode", matches(pincodeRe)},
		{"passcode", matches(passcodeRe)},
		{"phone_number", matches(phoneNumberRe)},
		{"dial_code", matches(dialCodeRe)},
		{"national_id", validateNationalID},
		{"strong_password", validateStrongPassword},
		{"dob", validateDOB},
		{"account_type", validateAccountType},
	}
	var errs []error
	for _, c := range custom {
		if err := v.RegisterValidation(c.tag, c.fn); err != nil {
			errs = append(errs, fmt.Errorf("register %s: %w", c.tag, err))
		}
	}
	return errors.Join(errs...)
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func validateNationalID(fl validator.FieldLevel) bool {
	return domain.ValidateIDNumber(fl.Field().String()) == nil
}

func validateDOB(fl validator.FieldLevel) bool {
	_, err := domain.ParseDateOfBirth(fl.Field().String())
	return err == nil
}

func validateAccountType(fl validator.FieldLevel) bool {
	return domain.AccountType(fl.Field().String()).Valid()
}

// validateStrongPassword wants 8 to 128 characters with an upper-case
// letter, a digit and one of @$!%*?&.
func validateStrongPassword(fl validator.FieldLevel) bool {
	pw := fl.Field().String()
	if len(pw) < 8 || len(pw) > 128 {
		return false
	}
	var upper, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && digit && special
}

// ValidationMessage turns a binding error into a client-facing sentence.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "malformed request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "pincode":
		return field + " must be 6 digits"
	case "passcode":
		return field + " must be exactly 6 digits"
	case "national_id":
		return field + " must be 12 digits"
	case "strong_password":
		return field + " must be 8-128 characters with an upper-case letter, a digit and one of " + passwordSpecials
	case "dob":
		return field + " must be in DD-MM-YYYY format"
	case "account_type":
		return field + " must be one of Student, Savings, Corporate"
	case "email":
		return field + " must be a valid email address"
	case "dial_code":
		return field + " must be a dial code such as +91"
	case "phone_number":
		return field + " must be 6 to 15 digits"
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

// TrimStrings trims surrounding whitespace from the exported string fields
// of a struct pointer, recursing into nested structs. Fields tagged
// `trim:"-"` (secrets) are left byte-for-byte intact. Values are otherwise
// stored as given; encoding for output is left to the renderer.
func TrimStrings(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	trimFields(rv.Elem())
}

func trimFields(rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() || rt.Field(i).Tag.Get("trim") == "-" {
			continue
		}
		if f.Kind() == reflect.Ptr {
			if f.IsNil() {
				continue
			}
			f = f.Elem()
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Struct:
			trimFields(f)
		}
	}
}
