//go:build unit
// +build unit

package cryptography

import (
	"crypto/rsa"
	"testing"

	cryptoDomain "rsa_crypt_service/internal/domain/crypto"
	"rsa_crypt_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestKeySize1024 = 1024
)

func setupRSAProcessor(t *testing.T) cryptoDomain.RSAProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewRSAProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestRSAProcessor(t *testing.T) {
	processor := setupRSAProcessor(t)

	t.Run("GenerateKeys", func(t *testing.T) {
		privateKey, publicKey, err := processor.GenerateKeys(TestKeySize1024)
		assert.NoError(t, err)
		assert.NotNil(t, privateKey)
		assert.NotNil(t, publicKey)
		assert.IsType(t, &rsa.PublicKey{}, publicKey)
		assert.Equal(t, TestKeySize1024, privateKey.N.BitLen())
	})

	t.Run("GenerateKeysBelowMinimum", func(t *testing.T) {
		_, _, err := processor.GenerateKeys(cryptoDomain.MinKeySize - 1)
		assert.Error(t, err)
	})

	t.Run("EncryptDecrypt", func(t *testing.T) {
		privateKey, publicKey, err := processor.GenerateKeys(TestKeySize1024)
		assert.NoError(t, err)

		plainText := []byte("a 32 byte secret message payload")
		require.Len(t, plainText, 32)

		encrypted, err := processor.Encrypt(plainText, publicKey)
		assert.NoError(t, err)
		decrypted, err := processor.Decrypt(encrypted, privateKey)
		assert.NoError(t, err)
		assert.Equal(t, plainText, decrypted)
	})

	t.Run("EncryptOversizePlaintext", func(t *testing.T) {
		_, publicKey, err := processor.GenerateKeys(TestKeySize1024)
		assert.NoError(t, err)

		// A 1024-bit key holds at most 128-11 bytes per PKCS#1 v1.5 block.
		oversize := make([]byte, publicKey.Size()-10)
		_, err = processor.Encrypt(oversize, publicKey)
		require.Error(t, err)

		var engineErr *cryptoDomain.EngineError
		assert.ErrorAs(t, err, &engineErr)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		_, publicKey, err := processor.GenerateKeys(TestKeySize1024)
		assert.NoError(t, err)

		encrypted, err := processor.Encrypt([]byte("short message"), publicKey)
		assert.NoError(t, err)

		wrongPrivKey, _, err := processor.GenerateKeys(TestKeySize1024)
		assert.NoError(t, err)

		_, err = processor.Decrypt(encrypted, wrongPrivKey)
		require.Error(t, err)

		var engineErr *cryptoDomain.EngineError
		assert.ErrorAs(t, err, &engineErr)
	})

	t.Run("DecryptMalformedCiphertext", func(t *testing.T) {
		privateKey, _, err := processor.GenerateKeys(TestKeySize1024)
		assert.NoError(t, err)

		_, err = processor.Decrypt([]byte("not a ciphertext"), privateKey)
		var engineErr *cryptoDomain.EngineError
		assert.ErrorAs(t, err, &engineErr)
	})

	t.Run("EncryptNilKey", func(t *testing.T) {
		_, err := processor.Encrypt([]byte("data"), nil)
		assert.Error(t, err)
	})

	t.Run("DecryptNilKey", func(t *testing.T) {
		_, err := processor.Decrypt([]byte("data"), nil)
		assert.Error(t, err)
	})
}
