package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	cryptoDomain "rsa_crypt_service/internal/domain/crypto"
	"rsa_crypt_service/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoDomain.RSAProcessor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified bit size.
func (r *rsaProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	if keySize < cryptoDomain.MinKeySize {
		return nil, nil, fmt.Errorf("key size %d is below the %d-bit minimum", keySize, cryptoDomain.MinKeySize)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	publicKey := &privateKey.PublicKey
	r.logger.Info("Generated RSA key pair")
	return privateKey, publicKey, nil
}

// Encrypt encrypts a single block of plaintext using RSA PKCS#1 v1.5 with
// the public key. Plaintext longer than key size - 11 bytes is rejected by
// the engine; large payloads are the bigfile tool's job, never chunked here.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, &cryptoDomain.EngineError{Operation: "encrypt", Err: fmt.Errorf("public key cannot be nil")}
	}

	cipherText, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, plainText)
	if err != nil {
		return nil, &cryptoDomain.EngineError{Operation: "encrypt", Err: err}
	}

	r.logger.Info("RSA encryption succeeded")
	return cipherText, nil
}

// Decrypt decrypts a single RSA PKCS#1 v1.5 block using the private key.
func (r *rsaProcessor) Decrypt(cipherText []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, &cryptoDomain.EngineError{Operation: "decrypt", Err: fmt.Errorf("private key cannot be nil")}
	}

	plainText, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, cipherText)
	if err != nil {
		return nil, &cryptoDomain.EngineError{Operation: "decrypt", Err: err}
	}

	r.logger.Info("RSA decryption succeeded")
	return plainText, nil
}
