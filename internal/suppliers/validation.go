package suppliers

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})
	return v
}

// Validate returns the form names of every field that is missing or blank
// after trimming, in form order. An empty result means the supplier is valid.
func Validate(s Supplier) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return append([]string(nil), RequiredFields...)
	}
	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}
	return missing
}

// notBlank fails for values that are empty once surrounding whitespace is
// removed. Whitespace is the browser trim set: space separators, tab, vertical
// tab, form feed, line terminators and the byte order mark.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimFunc(fl.Field().String(), isTrimSpace) != ""
}

func isTrimSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
