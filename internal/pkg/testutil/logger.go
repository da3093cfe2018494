package testutil

import (
	"testing"

	"rsa_crypt_service/internal/pkg/config"
	"rsa_crypt_service/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, err := logger.New(config.ConsoleLoggerSettings(config.LogLevelInfo))
	require.NoError(t, err)

	return log
}
