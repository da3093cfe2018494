package commands

import (
	"fmt"

	"rsa_crypt_service/internal/domain/crypto"
	"rsa_crypt_service/internal/infrastructure/streams"

	"github.com/spf13/cobra"
)

// Priv2PubCmd derives the public key embedded in a private key and writes it
// out, converting between PEM and DER as requested. Companion to keygen runs
// where --pubout was omitted.
func (commandHandler *CommandHandler) Priv2PubCmd(cmd *cobra.Command, _ []string) error {
	inForm, err := keyFormatFlag(cmd, "inform")
	if err != nil {
		return err
	}
	outForm, err := keyFormatFlag(cmd, "outform")
	if err != nil {
		return err
	}
	inputPath, err := cmd.Flags().GetString("input")
	if err != nil {
		return fmt.Errorf("invalid input flag: %w", err)
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}

	data, inputName, err := streams.ReadAll(inputPath)
	if err != nil {
		return err
	}
	commandHandler.logger.Info("Reading private key from ", inputName)

	privateKey, err := commandHandler.codec.DecodePrivate(data, inForm)
	if err != nil {
		return &crypto.KeyFormatError{Source: inputName, Role: crypto.KeyRolePrivate, Err: err}
	}

	output, err := commandHandler.codec.EncodePublic(&privateKey.PublicKey, outForm)
	if err != nil {
		return fmt.Errorf("failed to encode public key: %w", err)
	}

	outputName, err := streams.WriteAll(outputPath, output)
	if err != nil {
		return err
	}
	commandHandler.logger.Info("Wrote public key to ", outputName)
	return nil
}

// InitPriv2PubCommand registers the priv2pub command.
func InitPriv2PubCommand(rootCmd *cobra.Command, handler *CommandHandler) {
	priv2PubCmd := &cobra.Command{
		Use:   "priv2pub",
		Short: "Derive the public key from an RSA private key",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return crypto.NewUsageError("priv2pub takes no positional arguments, got %d", len(args))
			}
			return nil
		},
		RunE: handler.Priv2PubCmd,
	}
	priv2PubCmd.Flags().String("input", "", "Input filename of the private key. Reads from stdin if not specified.")
	priv2PubCmd.Flags().String("output", "", "Output filename for the public key. Written to stdout if this option is not present.")
	priv2PubCmd.Flags().String("inform", string(crypto.DefaultKeyFormat), "Key format of the input private key - PEM or DER")
	priv2PubCmd.Flags().String("outform", string(crypto.DefaultKeyFormat), "Key format of the output public key - PEM or DER")
	rootCmd.AddCommand(priv2PubCmd)
}
