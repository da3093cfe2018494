package crypto

import "crypto/rsa"

// RSAProcessor handles the RSA primitives the CLI delegates to.
// Implementations operate on single blocks only; input larger than the key
// capacity is an engine failure, not a reason to chunk.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	// Recommended sizes: 2048 (minimum for real use), 3072, 4096 bits.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// Encrypt encrypts a single PKCS#1 v1.5 block with the public key.
	// The plaintext must be at most key size - 11 bytes.
	Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Decrypt decrypts a single PKCS#1 v1.5 block with the private key.
	Decrypt(cipherText []byte, privateKey *rsa.PrivateKey) ([]byte, error)
}

// KeyCodec serializes and deserializes PKCS#1 key structures in PEM or DER.
// Encode followed by Decode with the same format is an identity for both
// key roles.
type KeyCodec interface {
	// EncodePublic serializes an RSA public key in the given format.
	EncodePublic(publicKey *rsa.PublicKey, format KeyFormat) ([]byte, error)

	// EncodePrivate serializes an RSA private key in the given format.
	EncodePrivate(privateKey *rsa.PrivateKey, format KeyFormat) ([]byte, error)

	// DecodePublic parses an RSA public key from data in the given format.
	DecodePublic(data []byte, format KeyFormat) (*rsa.PublicKey, error)

	// DecodePrivate parses an RSA private key from data in the given format.
	DecodePrivate(data []byte, format KeyFormat) (*rsa.PrivateKey, error)
}
