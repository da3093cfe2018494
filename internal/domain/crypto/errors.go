package crypto

import (
	"errors"
	"fmt"
)

// Exit codes for the process. Usage problems keep the conventional code 1,
// everything that fails after argument parsing exits with 2.
const (
	ExitCodeUsage   = 1
	ExitCodeFailure = 2
)

// UsageError reports a malformed invocation: wrong argument count,
// non-numeric key size, invalid format choice. The command prints its help
// text before returning one; the process exits with ExitCodeUsage.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// NewUsageError builds a UsageError with a formatted message.
func NewUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// KeyFormatError reports key bytes that do not decode under the declared
// format and role. Source names the offending file ("stdin" for piped keys).
type KeyFormatError struct {
	Source string
	Role   KeyRole
	Err    error
}

func (e *KeyFormatError) Error() string {
	return fmt.Sprintf("cannot decode %s key from %s: %v", e.Role, e.Source, e.Err)
}

func (e *KeyFormatError) Unwrap() error {
	return e.Err
}

// IOError reports a file open, read, or write failure together with the
// offending path.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// EngineError reports that the cryptographic transform rejected its input,
// e.g. plaintext too long for the key modulus or malformed ciphertext. The
// underlying cause is surfaced verbatim.
type EngineError struct {
	Operation string
	Err       error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitCodeUsage
	}
	return ExitCodeFailure
}
