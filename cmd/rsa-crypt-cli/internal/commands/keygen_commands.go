package commands

import (
	"fmt"
	"strconv"

	"rsa_crypt_service/internal/domain/crypto"
	"rsa_crypt_service/internal/infrastructure/streams"
	"rsa_crypt_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

// keyGenParams are the validated key generation parameters.
type keyGenParams struct {
	KeySize int    `validate:"required,rsa_keysize"`
	Form    string `validate:"required,key_format"`
}

// newKeyGenValidator builds the validator with the RSA-specific field rules.
func newKeyGenValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("rsa_keysize", validators.RSAKeySizeValidation); err != nil {
		return nil, fmt.Errorf("failed to register key size validation: %w", err)
	}
	if err := validate.RegisterValidation("key_format", validators.KeyFormatValidation); err != nil {
		return nil, fmt.Errorf("failed to register key format validation: %w", err)
	}
	return validate, nil
}

// KeyGenCmd generates an RSA key pair. The private key always gets written,
// to --privout or stdout; the public key only when --pubout is given. Both
// keys are serialized in the --form format.
func (commandHandler *CommandHandler) KeyGenCmd(cmd *cobra.Command, args []string) error {
	keySize, err := strconv.Atoi(args[0])
	if err != nil {
		return usageError(cmd, "not a valid number: %s", args[0])
	}
	form, err := cmd.Flags().GetString("form")
	if err != nil {
		return fmt.Errorf("invalid form flag: %w", err)
	}
	pubOutPath, err := cmd.Flags().GetString("pubout")
	if err != nil {
		return fmt.Errorf("invalid pubout flag: %w", err)
	}
	privOutPath, err := cmd.Flags().GetString("privout")
	if err != nil {
		return fmt.Errorf("invalid privout flag: %w", err)
	}

	validate, err := newKeyGenValidator()
	if err != nil {
		return err
	}
	params := keyGenParams{KeySize: keySize, Form: form}
	if err := validate.Struct(&params); err != nil {
		return usageError(cmd, "invalid key generation parameters: %v", err)
	}
	keyFormat := crypto.KeyFormat(form)

	commandHandler.logger.Info("Generating ", keySize, "-bit key pair")
	privateKey, publicKey, err := commandHandler.processor.GenerateKeys(keySize)
	if err != nil {
		return &crypto.EngineError{Operation: "key generation", Err: err}
	}

	// The public key is simply not written anywhere when --pubout is absent;
	// priv2pub can derive it later.
	if pubOutPath != "" {
		data, err := commandHandler.codec.EncodePublic(publicKey, keyFormat)
		if err != nil {
			return fmt.Errorf("failed to encode public key: %w", err)
		}
		commandHandler.logger.Info("Writing public key to ", pubOutPath)
		if _, err := streams.WriteAll(pubOutPath, data); err != nil {
			return err
		}
	}

	data, err := commandHandler.codec.EncodePrivate(privateKey, keyFormat)
	if err != nil {
		return fmt.Errorf("failed to encode private key: %w", err)
	}

	privateName, err := streams.WriteAll(privOutPath, data)
	if err != nil {
		return err
	}
	commandHandler.logger.Info("Wrote private key to ", privateName)
	return nil
}

// InitKeyGenCommand registers the keygen command.
func InitKeyGenCommand(rootCmd *cobra.Command, handler *CommandHandler) {
	keyGenCmd := &cobra.Command{
		Use:   "keygen <keysize>",
		Short: "Generate a new RSA key pair of <keysize> bits",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return crypto.NewUsageError("keygen requires exactly one keysize argument, got %d", len(args))
			}
			return nil
		},
		RunE: handler.KeyGenCmd,
	}
	keyGenCmd.Flags().String("pubout", "", "Output filename for the public key. The public key is not saved if this option is not present. You can use priv2pub to create the public key file later.")
	keyGenCmd.Flags().String("privout", "", "Output filename for the private key. The key is written to stdout if this option is not present.")
	keyGenCmd.Flags().String("form", string(crypto.DefaultKeyFormat), "Key format of the private and public keys - PEM or DER")
	rootCmd.AddCommand(keyGenCmd)
}
