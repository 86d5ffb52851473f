package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyValidator_Validate(t *testing.T) {
	validator := NewPolicyValidator("")

	tests := []struct {
		name       string
		password   string
		wantOK     bool
		violations []string
	}{
		{
			name:       "empty",
			password:   "",
			violations: []string{ViolationEmpty},
		},
		{
			name:     "short lowercase",
			password: "abc",
			violations: []string{
				ViolationTooShort,
				ViolationMissingUppercase,
				ViolationMissingDigit,
				ViolationMissingSpecial,
			},
		},
		{
			name:     "minimal valid",
			password: "Abcdef1!",
			wantOK:   true,
		},
		{
			name:       "no uppercase",
			password:   "abc123!@",
			violations: []string{ViolationMissingUppercase},
		},
		{
			name:       "no lowercase",
			password:   "ABC123!@",
			violations: []string{ViolationMissingLowercase},
		},
		{
			name:       "no digit",
			password:   "Abcdef!@",
			violations: []string{ViolationMissingDigit},
		},
		{
			name:       "no special char",
			password:   "Abcdef12",
			violations: []string{ViolationMissingSpecial},
		},
		{
			name:       "seven chars otherwise strong",
			password:   "Abc123!",
			violations: []string{ViolationTooShort},
		},
		{
			name:     "backslash and quote are special",
			password: `Abcdef1\"`,
			wantOK:   true,
		},
		{
			name:     "only spaces",
			password: "        ",
			violations: []string{
				ViolationMissingUppercase,
				ViolationMissingLowercase,
				ViolationMissingDigit,
				ViolationMissingSpecial,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validator.Validate(tt.password)
			assert.Equal(t, tt.wantOK, res.OK)
			if tt.wantOK {
				assert.Empty(t, res.Violations)
				assert.NoError(t, res.Err())
			} else {
				assert.Equal(t, tt.violations, res.Violations)
				assert.ErrorIs(t, res.Err(), ErrWeakPassword)
			}
		})
	}
}

func TestPolicyValidator_Deterministic(t *testing.T) {
	validator := NewPolicyValidator("")
	for i := 0; i < 10; i++ {
		assert.Equal(t, validator.Validate("abc"), validator.Validate("abc"))
	}
}

func TestPolicyValidator_CustomSpecialSet(t *testing.T) {
	validator := NewPolicyValidator("~")

	assert.True(t, validator.Validate("Abcdef1~").OK)
	assert.Equal(t, []string{ViolationMissingSpecial}, validator.Validate("Abcdef1!").Violations)
}

func TestResult_ErrMessage(t *testing.T) {
	err := NewPolicyValidator("").Validate("abc").Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too-short, missing-uppercase, missing-digit, missing-special")

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "weak_password", de.Code)
}

func TestPolicyValidator_ValidateUsername(t *testing.T) {
	validator := NewPolicyValidator("")

	tests := []struct {
		name        string
		username    string
		wantErr     bool
		expectedErr string
	}{
		{name: "valid", username: "alice123"},
		{name: "too short", username: "ab", wantErr: true, expectedErr: "at least 3 characters"},
		{name: "too long", username: strings.Repeat("a", 33), wantErr: true, expectedErr: "at most 32 characters"},
		{name: "underscore", username: "alice_b"},
		{name: "dash", username: "alice-b"},
		{name: "dot", username: "alice.b"},
		{name: "space", username: "alice b", wantErr: true, expectedErr: "can only contain"},
		{name: "at sign", username: "alice@b", wantErr: true, expectedErr: "can only contain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateUsername(tt.username)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPolicyValidator_ValidateEmail(t *testing.T) {
	validator := NewPolicyValidator("")

	assert.NoError(t, validator.ValidateEmail("alice@example.com"))
	assert.Error(t, validator.ValidateEmail(""))
	assert.Error(t, validator.ValidateEmail("not-an-email"))
	assert.Error(t, validator.ValidateEmail("Alice <alice@example.com>"))
}
