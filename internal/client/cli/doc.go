// Package cli provides the interactive exactauth command-line client.
//
// It wires configuration, the gRPC client and a small REPL:
//
//   - register: create a regular account
//   - login / logout: open or drop a session
//   - whoami: show the account behind the current session
//
// Identifiers are sent exactly as typed. Only the line terminator is removed,
// so surrounding spaces and letter case are part of the identifier.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
