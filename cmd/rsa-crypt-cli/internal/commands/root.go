package commands

import (
	"rsa_crypt_service/internal/domain/crypto"
	"rsa_crypt_service/internal/pkg/config"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the rsa-crypt-cli root command with all sub-commands
// registered. Usage and error printing is handled by main via the returned
// error, so cobra's own reporting is silenced.
func NewRootCommand() *cobra.Command {
	handler := NewCommandHandler()

	rootCmd := &cobra.Command{
		Use:   "rsa-crypt-cli",
		Short: "RSA file encryption CLI",
		Long: `rsa-crypt-cli is a command-line tool for RSA file operations:
generating a key pair, encrypting a file under a public key, decrypting it
under the private key, and deriving a public key from a private one.

Keys are PKCS#1 structures in PEM or DER. Payloads are single RSA blocks;
files longer than the key length are out of scope for this tool.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: handler.Setup,
	}

	rootCmd.PersistentFlags().String("log-level", config.LogLevelInfo, "Log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this rotated file instead of stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Help()
		return crypto.NewUsageError("%v", err)
	})

	InitKeyGenCommand(rootCmd, handler)
	InitCryptoOperationCommands(rootCmd, handler)
	InitPriv2PubCommand(rootCmd, handler)

	return rootCmd
}
