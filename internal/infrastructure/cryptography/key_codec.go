package cryptography

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	cryptoDomain "rsa_crypt_service/internal/domain/crypto"
)

// PEM block types for PKCS#1 key structures.
const (
	pemTypePublicKey  = "RSA PUBLIC KEY"
	pemTypePrivateKey = "RSA PRIVATE KEY"
)

// pkcs1KeyCodec struct that implements the KeyCodec interface. DER is the
// raw x509 PKCS#1 marshaling; PEM wraps the same bytes in a base64 block,
// so both formats round-trip through the same ASN.1 structures.
type pkcs1KeyCodec struct{}

// NewPKCS1KeyCodec creates and returns a new instance of pkcs1KeyCodec
func NewPKCS1KeyCodec() cryptoDomain.KeyCodec {
	return &pkcs1KeyCodec{}
}

// EncodePublic serializes an RSA public key in the given format.
func (c *pkcs1KeyCodec) EncodePublic(publicKey *rsa.PublicKey, format cryptoDomain.KeyFormat) ([]byte, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("public key cannot be nil")
	}
	return encodeKeyBytes(x509.MarshalPKCS1PublicKey(publicKey), pemTypePublicKey, format)
}

// EncodePrivate serializes an RSA private key in the given format.
func (c *pkcs1KeyCodec) EncodePrivate(privateKey *rsa.PrivateKey, format cryptoDomain.KeyFormat) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}
	return encodeKeyBytes(x509.MarshalPKCS1PrivateKey(privateKey), pemTypePrivateKey, format)
}

// DecodePublic parses an RSA public key from data in the given format.
func (c *pkcs1KeyCodec) DecodePublic(data []byte, format cryptoDomain.KeyFormat) (*rsa.PublicKey, error) {
	der, err := decodeKeyBytes(data, pemTypePublicKey, format)
	if err != nil {
		return nil, err
	}

	publicKey, err := x509.ParsePKCS1PublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PKCS#1 public key: %w", err)
	}
	return publicKey, nil
}

// DecodePrivate parses an RSA private key from data in the given format.
func (c *pkcs1KeyCodec) DecodePrivate(data []byte, format cryptoDomain.KeyFormat) (*rsa.PrivateKey, error) {
	der, err := decodeKeyBytes(data, pemTypePrivateKey, format)
	if err != nil {
		return nil, err
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PKCS#1 private key: %w", err)
	}
	return privateKey, nil
}

// encodeKeyBytes wraps marshaled PKCS#1 DER bytes in the requested format.
func encodeKeyBytes(der []byte, pemType string, format cryptoDomain.KeyFormat) ([]byte, error) {
	switch format {
	case cryptoDomain.KeyFormatDER:
		return der, nil
	case cryptoDomain.KeyFormatPEM:
		block := &pem.Block{
			Type:  pemType,
			Bytes: der,
		}
		return pem.EncodeToMemory(block), nil
	default:
		return nil, fmt.Errorf("unsupported key format %q", format)
	}
}

// decodeKeyBytes extracts the PKCS#1 DER bytes from data in the declared
// format. A PEM block with the wrong type header is a decode failure, not a
// fallback to the other role.
func decodeKeyBytes(data []byte, pemType string, format cryptoDomain.KeyFormat) ([]byte, error) {
	switch format {
	case cryptoDomain.KeyFormatDER:
		return data, nil
	case cryptoDomain.KeyFormatPEM:
		block, _ := pem.Decode(data)
		if block == nil {
			return nil, fmt.Errorf("no PEM block found")
		}
		if block.Type != pemType {
			return nil, fmt.Errorf("unexpected PEM block type %q: want %q", block.Type, pemType)
		}
		return block.Bytes, nil
	default:
		return nil, fmt.Errorf("unsupported key format %q", format)
	}
}
