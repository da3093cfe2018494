// Package streams maps optional CLI path arguments to byte sources and
// sinks: a named file when a path is given, the process's standard streams
// otherwise.
package streams

import (
	"io"
	"os"
	"path/filepath"

	cryptoDomain "rsa_crypt_service/internal/domain/crypto"
)

// StdinName and StdoutName are the display names used in status lines and
// error messages when no path was given.
const (
	StdinName  = "stdin"
	StdoutName = "stdout"
)

// Source is a resolved byte source with a display name for status lines.
type Source struct {
	io.ReadCloser
	Name string
}

// Sink is a resolved byte sink with a display name for status lines.
type Sink struct {
	io.WriteCloser
	Name string
}

// nopCloser wraps a standard stream so callers can Close unconditionally
// without closing the process's stdin/stdout.
type nopCloser struct {
	io.ReadWriter
}

func (nopCloser) Close() error { return nil }

// ResolveInput resolves an optional path to a byte source. An empty path
// means standard input. File-open failures carry the offending path.
func ResolveInput(path string) (*Source, error) {
	if path == "" {
		return &Source{ReadCloser: io.NopCloser(os.Stdin), Name: StdinName}, nil
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, &cryptoDomain.IOError{Path: path, Err: err}
	}
	return &Source{ReadCloser: file, Name: path}, nil
}

// ResolveOutput resolves an optional path to a byte sink. An empty path
// means standard output; a named file is created or truncated.
func ResolveOutput(path string) (*Sink, error) {
	if path == "" {
		return &Sink{WriteCloser: nopCloser{os.Stdout}, Name: StdoutName}, nil
	}

	file, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, &cryptoDomain.IOError{Path: path, Err: err}
	}
	return &Sink{WriteCloser: file, Name: path}, nil
}

// ReadAll resolves the path and reads the whole source into memory. Input is
// fully buffered before any transform begins; acceptable for single-block
// payloads only.
func ReadAll(path string) ([]byte, string, error) {
	source, err := ResolveInput(path)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = source.Close()
	}()

	data, err := io.ReadAll(source)
	if err != nil {
		return nil, source.Name, &cryptoDomain.IOError{Path: source.Name, Err: err}
	}
	return data, source.Name, nil
}

// WriteAll resolves the path and writes data to it in one shot. The sink is
// closed on every exit path; close failures on a named file surface as
// IOError since buffered bytes may not have reached disk.
func WriteAll(path string, data []byte) (string, error) {
	sink, err := ResolveOutput(path)
	if err != nil {
		return "", err
	}

	if _, err := sink.Write(data); err != nil {
		_ = sink.Close()
		return sink.Name, &cryptoDomain.IOError{Path: sink.Name, Err: err}
	}
	if err := sink.Close(); err != nil {
		return sink.Name, &cryptoDomain.IOError{Path: sink.Name, Err: err}
	}
	return sink.Name, nil
}
