package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	NoCommaTag = "nocomma"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	NoCommaTag: ValidateNoComma,
}

// ValidateNoComma rejects values that would split into several recipients
// once joined.
func ValidateNoComma(fl validator.FieldLevel) bool {
	return !strings.Contains(fl.Field().String(), ",")
}
