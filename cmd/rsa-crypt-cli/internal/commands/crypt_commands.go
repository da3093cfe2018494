package commands

import (
	"crypto/rsa"
	"fmt"
	"strings"

	"rsa_crypt_service/internal/domain/crypto"
	"rsa_crypt_service/internal/infrastructure/streams"

	"github.com/spf13/cobra"
)

// performFunc is the transform a crypto operation applies to the fully
// buffered input under the decoded key.
type performFunc func(commandHandler *CommandHandler, input []byte, key interface{}) ([]byte, error)

// cryptoOperation binds an operation identity to its transform. The identity
// is fixed at registration; one shared pipeline serves every variant.
type cryptoOperation struct {
	identity crypto.OperationIdentity
	perform  performFunc
}

// runOperation is the shared pipeline for single-key, single-file
// transforms: parse flags, decode the key per the operation's role, buffer
// the input, apply the transform, write the result. Status text goes to the
// logger on stderr; only the transformed payload reaches the data sink.
func (commandHandler *CommandHandler) runOperation(cmd *cobra.Command, args []string, operation cryptoOperation) error {
	keyForm, err := keyFormatFlag(cmd, "keyform")
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

	key, err := commandHandler.readKey(args[0], keyForm, operation.identity.KeyRole)
	if err != nil {
		return err
	}

	input, inputName, err := streams.ReadAll(inputPath)
	if err != nil {
		return err
	}
	commandHandler.logger.Info("Read input from ", inputName)

	commandHandler.logger.Info(progressiveTitle(operation.identity))
	output, err := operation.perform(commandHandler, input, key)
	if err != nil {
		return err
	}

	outputName, err := streams.WriteAll(outputPath, output)
	if err != nil {
		return err
	}
	commandHandler.logger.Info("Wrote ", operation.identity.PastTense, " output to ", outputName)
	return nil
}

// readKey loads key bytes from the positional path and decodes them per the
// declared format and the operation's key role.
func (commandHandler *CommandHandler) readKey(path string, format crypto.KeyFormat, role crypto.KeyRole) (interface{}, error) {
	commandHandler.logger.Info("Reading ", string(role), " key from ", path)

	data, _, err := streams.ReadAll(path)
	if err != nil {
		return nil, err
	}

	switch role {
	case crypto.KeyRolePublic:
		key, err := commandHandler.codec.DecodePublic(data, format)
		if err != nil {
			return nil, &crypto.KeyFormatError{Source: path, Role: role, Err: err}
		}
		return key, nil
	case crypto.KeyRolePrivate:
		key, err := commandHandler.codec.DecodePrivate(data, format)
		if err != nil {
			return nil, &crypto.KeyFormatError{Source: path, Role: role, Err: err}
		}
		return key, nil
	default:
		return nil, fmt.Errorf("unknown key role %q", role)
	}
}

// performEncrypt delegates to the engine's public-key encryption.
func performEncrypt(commandHandler *CommandHandler, input []byte, key interface{}) ([]byte, error) {
	publicKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("encrypt requires an RSA public key")
	}
	return commandHandler.processor.Encrypt(input, publicKey)
}

// performDecrypt delegates to the engine's private-key decryption.
func performDecrypt(commandHandler *CommandHandler, input []byte, key interface{}) ([]byte, error) {
	privateKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("decrypt requires an RSA private key")
	}
	return commandHandler.processor.Decrypt(input, privateKey)
}

// exactKeyArgs enforces the single positional key-path argument. A wrong
// count prints help and surfaces as a usage error, never a crash.
func exactKeyArgs(identity crypto.OperationIdentity) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return crypto.NewUsageError("%s requires exactly one %s key path argument, got %d", identity.Name, identity.KeyRole, len(args))
		}
		return nil
	}
}

// progressiveTitle renders the identity's progressive tense as a status
// line, e.g. "Encrypting".
func progressiveTitle(identity crypto.OperationIdentity) string {
	return titleCase(identity.ProgressiveTense)
}

// titleCase uppercases the first letter of an ASCII word.
func titleCase(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// InitCryptoOperationCommands registers the encrypt and decrypt commands.
func InitCryptoOperationCommands(rootCmd *cobra.Command, handler *CommandHandler) {
	operations := []cryptoOperation{
		{identity: crypto.EncryptIdentity, perform: performEncrypt},
		{identity: crypto.DecryptIdentity, perform: performDecrypt},
	}

	for _, operation := range operations {
		op := operation
		cmd := &cobra.Command{
			Use:   fmt.Sprintf("%s <%s_key_path>", op.identity.Name, op.identity.KeyRole),
			Short: fmt.Sprintf("%s a file using RSA", titleCase(op.identity.Name)),
			Long: fmt.Sprintf(`%ss a file with the %s key at the given path.
The file must be shorter than the key length; larger files are the job of a
separate bigfile tool.`, titleCase(op.identity.Name), op.identity.KeyRole),
			Args: exactKeyArgs(op.identity),
			RunE: func(cmd *cobra.Command, args []string) error {
				return handler.runOperation(cmd, args, op)
			},
		}
		cmd.Flags().String("input", "", fmt.Sprintf("Name of the file to %s. Reads from stdin if not specified.", op.identity.Name))
		cmd.Flags().String("output", "", fmt.Sprintf("Name of the file to write the %s file to. Written to stdout if this option is not present.", op.identity.PastTense))
		cmd.Flags().String("keyform", string(crypto.DefaultKeyFormat), "Key format of the key - PEM or DER")
		rootCmd.AddCommand(cmd)
	}
}
