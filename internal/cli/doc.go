// Package cli provides the interactive GophVault command-line client.
//
// It wires configuration, logging and the vault core, then runs a REPL that
// talks to services.VaultService only; it never reaches into the credential
// store directly. Passwords and passkeys are read without echo.
//
// Commands (numbers select the same entries from the printed menu):
//
//	Not logged in:  register, login, help, exit
//	Logged in:      store, retrieve, list, logout, whoami, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
