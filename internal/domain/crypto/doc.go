// Package crypto defines the core contracts and value types for the RSA CLI:
// the RSAProcessor and KeyCodec interfaces, key role and key format enums,
// the per-command operation identity, and the error taxonomy shared by all
// commands.

package crypto
