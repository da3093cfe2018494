package crypto

import "fmt"

// KeyRole says which half of an RSA key pair an operation consumes.
type KeyRole string

// KeyRolePublic marks operations that consume the public key (encrypt).
const KeyRolePublic KeyRole = "public"

// KeyRolePrivate marks operations that consume the private key (decrypt).
const KeyRolePrivate KeyRole = "private"

// KeyFormat selects the serialization of PKCS#1 key structures.
type KeyFormat string

// KeyFormatPEM is the base64 textual encoding with RSA PUBLIC/PRIVATE KEY headers.
const KeyFormatPEM KeyFormat = "PEM"

// KeyFormatDER is the raw binary ASN.1 encoding.
const KeyFormatDER KeyFormat = "DER"

// DefaultKeyFormat is used when no format flag is given.
const DefaultKeyFormat = KeyFormatPEM

// MinKeySize is the smallest key size in bits the keygen command accepts.
// crypto/rsa refuses to generate or use smaller moduli.
const MinKeySize = 1024

// ParseKeyFormat maps a flag value to a KeyFormat. The comparison is exact;
// format names are uppercase on the CLI surface.
func ParseKeyFormat(value string) (KeyFormat, error) {
	switch KeyFormat(value) {
	case KeyFormatPEM, KeyFormatDER:
		return KeyFormat(value), nil
	default:
		return "", fmt.Errorf("unsupported key format %q: must be PEM or DER", value)
	}
}
