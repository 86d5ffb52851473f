package cmd

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordy/internal/domain/user"
)

func TestKeygen(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"keygen"})

	require.NoError(t, rootCmd.Execute())

	key, err := hex.DecodeString(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Len(t, key, 32)
}

func TestPolicyCheck(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name      string
		input     string
		wantErr   bool
		wantLines []string
	}{
		{name: "strong", input: "Str0ng!Passw0rd\n", wantLines: []string{"соответствует"}},
		{
			name:      "weak",
			input:     "abc\n",
			wantErr:   true,
			wantLines: []string{user.ViolationTooShort, user.ViolationMissingUppercase, user.ViolationMissingDigit, user.ViolationMissingSpecial},
		},
		{name: "empty", input: "", wantErr: true, wantLines: []string{user.ViolationEmpty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetIn(strings.NewReader(tt.input))
			rootCmd.SetArgs([]string{"policy", "check"})

			err := rootCmd.Execute()
			if tt.wantErr {
				assert.ErrorIs(t, err, user.ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
			for _, l := range tt.wantLines {
				assert.Contains(t, out.String(), l)
			}
		})
	}
}

func TestPolicyCheck_SpecialCharsSource(t *testing.T) {
	color.NoColor = true
	t.Setenv("POLICY_SPECIAL_CHARS", "~")
	t.Cleanup(func() {
		specialChars = ""
		policyCheckCmd.Flags().Lookup("special").Changed = false
	})

	run := func(input string, args ...string) error {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetIn(strings.NewReader(input))
		rootCmd.SetArgs(append([]string{"policy", "check"}, args...))
		return rootCmd.Execute()
	}

	// набор из окружения, как на сервере
	assert.NoError(t, run("Str0ngPassw0rd~\n"))
	assert.ErrorIs(t, run("Str0ng!Passw0rd\n"), user.ErrWeakPassword)

	// явный флаг важнее окружения
	assert.NoError(t, run("Str0ng!Passw0rd\n", "--special", "!"))
}
