// Package commands implements the cobra commands of rsa-crypt-cli: key pair
// generation, the shared encrypt/decrypt operation pipeline, and the
// private-to-public key converter.
package commands

import (
	"fmt"

	"rsa_crypt_service/internal/domain/crypto"
	"rsa_crypt_service/internal/infrastructure/cryptography"
	"rsa_crypt_service/internal/pkg/config"
	"rsa_crypt_service/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// CommandHandler bundles the collaborators shared by all commands: the RSA
// engine, the key codec, and the logger. The logger is built lazily in Setup
// because its settings come from persistent flags.
type CommandHandler struct {
	processor    crypto.RSAProcessor
	codec        crypto.KeyCodec
	logger       logger.Logger
	invocationID string
}

// NewCommandHandler creates a handler with the PKCS#1 codec. The processor
// is created together with the logger in Setup.
func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		codec: cryptography.NewPKCS1KeyCodec(),
	}
}

// Setup builds the logger from the root command's persistent flags and wires
// the RSA processor. Registered as the root PersistentPreRunE so it runs
// once before any command body.
func (commandHandler *CommandHandler) Setup(cmd *cobra.Command, _ []string) error {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("invalid log-level flag: %w", err)
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return fmt.Errorf("invalid log-file flag: %w", err)
	}

	settings := config.ConsoleLoggerSettings(logLevel)
	if logFile != "" {
		settings = config.FileLoggerSettings(logLevel, logFile)
	}

	loggerInstance, err := logger.New(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	commandHandler.logger = loggerInstance

	processor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create RSA processor: %w", err)
	}
	commandHandler.processor = processor

	commandHandler.invocationID = uuid.New().String()
	commandHandler.logger.Debug("invocation ", commandHandler.invocationID)
	return nil
}

// usageError prints the command's help text and returns a UsageError so the
// process exits with the usage status code.
func usageError(cmd *cobra.Command, format string, args ...interface{}) error {
	_ = cmd.Help()
	return crypto.NewUsageError(format, args...)
}

// keyFormatFlag reads and parses a PEM/DER format flag, converting an
// invalid choice into a usage error.
func keyFormatFlag(cmd *cobra.Command, name string) (crypto.KeyFormat, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", name, err)
	}
	format, err := crypto.ParseKeyFormat(value)
	if err != nil {
		return "", usageError(cmd, "%v", err)
	}
	return format, nil
}
