// Package app wires the argscope pipeline together for the inspector
// binary: it validates configuration, builds the logger, loads the option
// catalog from its manifests, runs a parse session over the target argv
// and renders the result.
package app
