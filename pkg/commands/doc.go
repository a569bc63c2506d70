// Package commands implements the projmarks operations behind the CLI.
//
// Each command takes an App, which wires configuration, the path resolver,
// the mark store and the key binding registry together, plus an options
// struct, and returns a display result. Nothing here talks to the terminal
// directly; prompts and editors are passed in.
package commands
