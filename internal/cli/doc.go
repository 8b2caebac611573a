// Package cli parses the inspector binary's own command-line flags,
// validates them and translates them into the application configuration.
// It also owns process-level concerns like exit codes.
//
// The target argv — the arguments parsed against the loaded catalog — is
// everything after the inspector's own flags, conventionally separated
// with "--".
package cli
