//go:build unit
// +build unit

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"rsa_crypt_service/internal/domain/crypto"
	"rsa_crypt_service/internal/infrastructure/cryptography"
	"rsa_crypt_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateKeyFiles runs keygen and returns the public and private key paths.
func generateKeyFiles(t *testing.T, form string) (pubPath, privPath string) {
	t.Helper()
	tmpDir := t.TempDir()
	pubPath = filepath.Join(tmpDir, "public.key")
	privPath = filepath.Join(tmpDir, "private.key")

	err := runCLI(t, "keygen", "1024", "--form", form, "--pubout", pubPath, "--privout", privPath)
	require.NoError(t, err)
	return pubPath, privPath
}

func TestEncryptDecryptCommands(t *testing.T) {
	t.Run("RoundTripPEM", func(t *testing.T) {
		pubPath, privPath := generateKeyFiles(t, "PEM")
		tmpDir := t.TempDir()
		plainPath := filepath.Join(tmpDir, "message.txt")
		cipherPath := filepath.Join(tmpDir, "message.enc")
		decryptedPath := filepath.Join(tmpDir, "message.dec")

		message := []byte("a 32 byte secret message payload")
		require.Len(t, message, 32)
		require.NoError(t, testutil.CreateTestFile(plainPath, message))

		err := runCLI(t, "encrypt", pubPath, "--input", plainPath, "--output", cipherPath)
		require.NoError(t, err)

		cipherText, err := os.ReadFile(cipherPath)
		require.NoError(t, err)
		assert.NotEqual(t, message, cipherText)

		err = runCLI(t, "decrypt", privPath, "--input", cipherPath, "--output", decryptedPath)
		require.NoError(t, err)

		decrypted, err := os.ReadFile(decryptedPath)
		require.NoError(t, err)
		assert.Equal(t, message, decrypted)
	})

	t.Run("RoundTripDER", func(t *testing.T) {
		pubPath, privPath := generateKeyFiles(t, "DER")
		tmpDir := t.TempDir()
		plainPath := filepath.Join(tmpDir, "message.bin")
		cipherPath := filepath.Join(tmpDir, "message.enc")
		decryptedPath := filepath.Join(tmpDir, "message.dec")

		message := []byte{0x00, 0x01, 0x02, 0xff, 0xfe}
		require.NoError(t, testutil.CreateTestFile(plainPath, message))

		err := runCLI(t, "encrypt", pubPath, "--keyform", "DER", "--input", plainPath, "--output", cipherPath)
		require.NoError(t, err)

		err = runCLI(t, "decrypt", privPath, "--keyform", "DER", "--input", cipherPath, "--output", decryptedPath)
		require.NoError(t, err)

		decrypted, err := os.ReadFile(decryptedPath)
		require.NoError(t, err)
		assert.Equal(t, message, decrypted)
	})

	t.Run("WrongPositionalCountIsUsageError", func(t *testing.T) {
		var usageErr *crypto.UsageError

		err := runCLI(t, "encrypt")
		assert.ErrorAs(t, err, &usageErr)

		err = runCLI(t, "encrypt", "one.pem", "two.pem")
		assert.ErrorAs(t, err, &usageErr)

		err = runCLI(t, "decrypt")
		assert.ErrorAs(t, err, &usageErr)
	})

	t.Run("InvalidKeyformIsUsageError", func(t *testing.T) {
		pubPath, _ := generateKeyFiles(t, "PEM")

		err := runCLI(t, "encrypt", pubPath, "--keyform", "pem")
		var usageErr *crypto.UsageError
		assert.ErrorAs(t, err, &usageErr)
	})

	t.Run("UndecodableKeyIsKeyFormatError", func(t *testing.T) {
		keyPath := filepath.Join(t.TempDir(), "bogus.pem")
		require.NoError(t, testutil.CreateTestFile(keyPath, []byte("not a key")))

		err := runCLI(t, "encrypt", keyPath, "--input", keyPath)
		require.Error(t, err)

		var keyErr *crypto.KeyFormatError
		require.ErrorAs(t, err, &keyErr)
		assert.Equal(t, keyPath, keyErr.Source)
		assert.Equal(t, crypto.ExitCodeFailure, crypto.ExitCode(err))
	})

	t.Run("KeyRoleMismatchIsKeyFormatError", func(t *testing.T) {
		pubPath, privPath := generateKeyFiles(t, "PEM")

		// Decrypt declares the private role; a public key file must not pass.
		err := runCLI(t, "decrypt", pubPath, "--input", privPath)
		var keyErr *crypto.KeyFormatError
		assert.ErrorAs(t, err, &keyErr)
	})

	t.Run("MissingInputFileIsIOError", func(t *testing.T) {
		pubPath, _ := generateKeyFiles(t, "PEM")

		err := runCLI(t, "encrypt", pubPath, "--input", filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)

		var ioErr *crypto.IOError
		assert.ErrorAs(t, err, &ioErr)
	})

	t.Run("OversizePlaintextIsEngineError", func(t *testing.T) {
		pubPath, _ := generateKeyFiles(t, "PEM")
		plainPath := filepath.Join(t.TempDir(), "big.txt")

		// A 1024-bit key holds at most 128-11 bytes per block.
		require.NoError(t, testutil.CreateTestFile(plainPath, make([]byte, 200)))

		err := runCLI(t, "encrypt", pubPath, "--input", plainPath)
		require.Error(t, err)

		var engineErr *crypto.EngineError
		assert.ErrorAs(t, err, &engineErr)
		assert.Equal(t, crypto.ExitCodeFailure, crypto.ExitCode(err))
	})

	t.Run("MalformedCiphertextIsEngineError", func(t *testing.T) {
		_, privPath := generateKeyFiles(t, "PEM")
		cipherPath := filepath.Join(t.TempDir(), "bogus.enc")
		require.NoError(t, testutil.CreateTestFile(cipherPath, make([]byte, 128)))

		err := runCLI(t, "decrypt", privPath, "--input", cipherPath)
		var engineErr *crypto.EngineError
		assert.ErrorAs(t, err, &engineErr)
	})
}

func TestPriv2PubCmd(t *testing.T) {
	codec := cryptography.NewPKCS1KeyCodec()

	t.Run("DerivesPublicKeyAcrossFormats", func(t *testing.T) {
		pubPath, privPath := generateKeyFiles(t, "PEM")

		wantData, err := os.ReadFile(pubPath)
		require.NoError(t, err)
		want, err := codec.DecodePublic(wantData, crypto.KeyFormatPEM)
		require.NoError(t, err)

		for _, outForm := range []string{"PEM", "DER"} {
			outPath := filepath.Join(t.TempDir(), "derived."+outForm)

			err := runCLI(t, "priv2pub", "--input", privPath, "--output", outPath, "--inform", "PEM", "--outform", outForm)
			require.NoError(t, err)

			data, err := os.ReadFile(outPath)
			require.NoError(t, err)
			got, err := codec.DecodePublic(data, crypto.KeyFormat(outForm))
			require.NoError(t, err)
			assert.Equal(t, want.N, got.N)
			assert.Equal(t, want.E, got.E)
		}
	})

	t.Run("PublicKeyInputIsKeyFormatError", func(t *testing.T) {
		pubPath, _ := generateKeyFiles(t, "PEM")

		err := runCLI(t, "priv2pub", "--input", pubPath, "--output", filepath.Join(t.TempDir(), "out.pem"))
		var keyErr *crypto.KeyFormatError
		assert.ErrorAs(t, err, &keyErr)
	})

	t.Run("PositionalArgumentIsUsageError", func(t *testing.T) {
		err := runCLI(t, "priv2pub", "unexpected.pem")
		var usageErr *crypto.UsageError
		assert.ErrorAs(t, err, &usageErr)
	})
}
