package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"passwordy/internal/domain/user"
)

var specialChars string

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Политика мастер-пароля",
}

var policyCheckCmd = &cobra.Command{
	Use:     "check",
	Short:   "Проверить мастер-пароль по политике",
	Long:    "Читает пароль из терминала без эха (или из stdin) и выводит нарушения политики.",
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// без флага действует тот же набор, что и на сервере (POLICY_SPECIAL_CHARS)
		special := cfg.Security.SpecialChars
		if cmd.Flags().Changed("special") {
			special = specialChars
		}

		candidate, err := readCandidate(cmd)
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}

		res := user.NewPolicyValidator(special).Validate(candidate)
		printResult(cmd.OutOrStdout(), res)

		if !res.OK {
			return res.Err()
		}
		return nil
	},
}

func readCandidate(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), "Мастер-пароль: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		return string(b), err
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printResult(w io.Writer, res user.Result) {
	if res.OK {
		fmt.Fprintln(w, color.GreenString("✓ пароль соответствует политике"))
		return
	}

	fmt.Fprintln(w, color.RedString("✗ пароль не соответствует политике:"))
	for _, v := range res.Violations {
		fmt.Fprintf(w, "  - %s\n", color.YellowString(v))
	}
}

func init() {
	policyCheckCmd.Flags().StringVar(&specialChars, "special", "", "набор спецсимволов (по умолчанию POLICY_SPECIAL_CHARS)")
	policyCmd.AddCommand(policyCheckCmd)
}
