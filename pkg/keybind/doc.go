// Package keybind keeps host key bindings in sync with the set of mark keys.
//
// A Registry owns the live bindings: one jump trigger per key in use by any
// project, named by prefixing the key with the configured jump prefix. The
// host plugs in through the Binder interface. An empty prefix disables
// bindings entirely.
//
// ShellBinder is the Binder used by the CLI: it collects bindings and
// renders them as shell aliases for bash, zsh and fish.
//
// Registries are not safe for concurrent use.
package keybind
