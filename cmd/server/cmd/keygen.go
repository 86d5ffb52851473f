package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"passwordy/internal/app/server/crypto"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Сгенерировать ENCRYPTION_KEY",
	Long:  "Печатает новый 256-битный ключ в hex. Потеря ключа означает потерю всех секретов.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := crypto.GenerateKey()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key))
		return err
	},
}
