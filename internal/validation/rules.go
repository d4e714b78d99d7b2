package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Constraint tags usable in `validate` struct tags.
const (
	TagHexCode      = "hexcode"
	TagColorName    = "colorname"
	TagTaskListName = "tasklistname"
	TagPassword     = "password"
	TagUsername     = "username"
)

// Constraint bounds.
const (
	ColorNameMaxLen    = 32
	TaskListNameMaxLen = 100
	PasswordMinLen     = 8
	PasswordMaxLen     = 40
)

// PasswordSymbols is the set a password must draw at least one symbol from.
const PasswordSymbols = "@$!%*?&#^_+=.-"

var (
	hexCodeRegex      = regexp.MustCompile(`^#[a-fA-F0-9]{6}$`)
	taskListNameRegex = regexp.MustCompile(`^[a-zA-Z0-9 .,!?'"()\-_:;&/#@]{1,100}$`)
	usernameRegex     = regexp.MustCompile(`^[a-zA-Z0-9_.]{3,32}$`)
)

func registerRules(v *validator.Validate) error {
	rules := map[string]func(string) bool{
		TagHexCode:      IsHexCode,
		TagColorName:    IsColorName,
		TagTaskListName: IsTaskListName,
		TagPassword:     IsPassword,
		TagUsername:     IsUsername,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			return err
		}
	}
	return nil
}

// IsHexCode reports whether s is a #rrggbb color code.
func IsHexCode(s string) bool {
	return hexCodeRegex.MatchString(s)
}

// IsColorName accepts 1-32 characters without line breaks, at least one of which is not
// whitespace.
func IsColorName(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 1 || n > ColorNameMaxLen {
		return false
	}
	if strings.ContainsAny(s, "\n\r\u0085\u2028\u2029") {
		return false
	}
	return strings.TrimSpace(s) != ""
}

// IsTaskListName accepts 1-100 characters from the allowed set that are not all spaces.
func IsTaskListName(s string) bool {
	return taskListNameRegex.MatchString(s) && strings.TrimSpace(s) != ""
}

// IsUsername accepts 3-32 letters, digits, underscores and dots.
func IsUsername(s string) bool {
	return usernameRegex.MatchString(s)
}

// IsPassword requires 8-40 non-whitespace characters including a lowercase letter, an
// uppercase letter, a digit and one of PasswordSymbols.
func IsPassword(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < PasswordMinLen || n > PasswordMaxLen {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			return false
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
