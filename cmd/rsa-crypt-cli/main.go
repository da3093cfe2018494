// Package main is the entry point for the rsa-crypt-cli application.
// It builds the root command with the keygen, encrypt, decrypt and priv2pub
// sub-commands, executes it, and maps the returned error to the process
// exit code.
package main

import (
	"fmt"
	"os"

	commands "rsa_crypt_service/cmd/rsa-crypt-cli/internal/commands"

	"rsa_crypt_service/internal/domain/crypto"
)

func main() {
	rootCmd := commands.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(crypto.ExitCode(err))
	}
}
