package user

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 8
	// MaxPasswordBytes - предел bcrypt, длиннее он не хеширует.
	MaxPasswordBytes = 72

	DefaultSpecialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

// Коды нарушений политики мастер-пароля, в порядке проверки.
const (
	ViolationEmpty            = "empty"
	ViolationTooShort         = "too-short"
	ViolationMissingUppercase = "missing-uppercase"
	ViolationMissingLowercase = "missing-lowercase"
	ViolationMissingDigit     = "missing-digit"
	ViolationMissingSpecial   = "missing-special"
)

// Result - итог проверки пароля. OK == len(Violations) == 0.
type Result struct {
	OK         bool
	Violations []string
}

// Err возвращает nil для валидного результата, иначе ошибку со списком нарушений.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return &DomainError{
		Err:     ErrWeakPassword,
		Message: fmt.Sprintf("%s: %s", ErrWeakPassword, strings.Join(r.Violations, ", ")),
		Code:    "weak_password",
	}
}

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	Validate(password string) Result
	ValidateUsername(username string) error
	ValidateEmail(email string) error
}

// PolicyValidator проверяет мастер-пароль по фиксированному набору правил.
// Набор спецсимволов задается конфигурацией.
type PolicyValidator struct {
	special string
}

// NewPolicyValidator создает валидатор; пустой набор заменяется DefaultSpecialChars.
func NewPolicyValidator(specialChars string) *PolicyValidator {
	if specialChars == "" {
		specialChars = DefaultSpecialChars
	}
	return &PolicyValidator{special: specialChars}
}

// Validate evaluates every rule except when the candidate is empty.
func (v *PolicyValidator) Validate(password string) Result {
	if password == "" {
		return Result{OK: false, Violations: []string{ViolationEmpty}}
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(v.special, r) {
			hasSpecial = true
		}
	}

	violations := make([]string, 0, 5)
	if utf8.RuneCountInString(password) < MinPasswordLen {
		violations = append(violations, ViolationTooShort)
	}
	if !hasUpper {
		violations = append(violations, ViolationMissingUppercase)
	}
	if !hasLower {
		violations = append(violations, ViolationMissingLowercase)
	}
	if !hasDigit {
		violations = append(violations, ViolationMissingDigit)
	}
	if !hasSpecial {
		violations = append(violations, ViolationMissingSpecial)
	}

	return Result{OK: len(violations) == 0, Violations: violations}
}

// ValidateUsername валидирует логин
func (v *PolicyValidator) ValidateUsername(username string) error {
	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must be at most %d characters", MaxUsernameLen)
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return fmt.Errorf("username can only contain letters, digits, '_', '-', '.'")
		}
	}

	return nil
}

func (v *PolicyValidator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email %q is not a valid address", email)
	}

	return nil
}
