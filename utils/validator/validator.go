package validatorx

import (
	"sync"
	"unicode"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("strongpassword", strongPassword)
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// strongPassword enforces the marketplace password policy: minimum 8
// characters with at least one lowercase, one uppercase, one digit and
// one symbol (anything that is neither a word character nor a space).
// RE2 has no lookahead, so the rule is checked by rune classification.
func strongPassword(fl gpvalidator.FieldLevel) bool {
	password := fl.Field().String()
	if len([]rune(password)) < 8 {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case isSymbol(r):
			hasSymbol = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}

// isSymbol matches the non-word, non-space character class: not a
// letter, digit, underscore or whitespace.
func isSymbol(r rune) bool {
	if r == '_' || unicode.IsSpace(r) {
		return false
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
