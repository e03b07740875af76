// Package cli provides the interactive user form command-line client.
//
// It wires configuration, the REST client and the profile controller, then
// runs a REPL in which the user edits the form, submits it and manages the
// list of users.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
