package validators

import (
	"github.com/go-playground/validator/v10"

	cryptoDomain "rsa_crypt_service/internal/domain/crypto"
)

// RSAKeySizeValidation validates an RSA key size field: it must be at least
// the minimum modulus size able to carry one padded block. Arbitrary sizes
// above the minimum are accepted; the engine, not the CLI, owns the cost of
// unusual moduli.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	return fl.Field().Int() >= cryptoDomain.MinKeySize
}

// KeyFormatValidation validates a key format field against the supported
// PEM/DER choices.
func KeyFormatValidation(fl validator.FieldLevel) bool {
	_, err := cryptoDomain.ParseKeyFormat(fl.Field().String())
	return err == nil
}
