package keybind

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/projmarks/pkg/errors"
)

// Supported shells for Script
const (
	ShellBash = "bash"
	ShellZsh  = "zsh"
	ShellFish = "fish"
)

var aliasNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.,:+@%^][A-Za-z0-9_.,:+@%^-]*$`)

// Action is a non-jump alias installed under the action prefix.
type Action struct {
	Suffix  string
	Command string
}

// DefaultActions maps action suffixes to CLI subcommands.
var DefaultActions = []Action{
	{Suffix: "a", Command: "add"},
	{Suffix: "d", Command: "add-dir"},
	{Suffix: "r", Command: "rm"},
	{Suffix: "l", Command: "edit"},
}

// ShellBinder collects bindings and renders them as shell aliases.
type ShellBinder struct {
	aliases map[string]string // lhs -> key
}

// NewShellBinder creates an empty ShellBinder.
func NewShellBinder() *ShellBinder {
	return &ShellBinder{aliases: make(map[string]string)}
}

// Bind records an alias; names the shell cannot use are rejected.
func (b *ShellBinder) Bind(lhs, key string) error {
	if !aliasNamePattern.MatchString(lhs) {
		return errors.Newf(errors.ErrInvalidKey, "%q cannot be used as a shell alias", lhs).
			WithDetail("key", key)
	}
	b.aliases[lhs] = key
	return nil
}

// Unbind forgets an alias.
func (b *ShellBinder) Unbind(lhs string) error {
	delete(b.aliases, lhs)
	return nil
}

// Aliases returns a copy of the recorded aliases.
func (b *ShellBinder) Aliases() map[string]string {
	out := make(map[string]string, len(b.aliases))
	for k, v := range b.aliases {
		out[k] = v
	}
	return out
}

// ScriptOptions controls snippet generation.
type ScriptOptions struct {
	Shell        string
	Program      string
	ActionPrefix string
	Actions      []Action
}

// Script renders the shell integration snippet.
func (b *ShellBinder) Script(opts ScriptOptions) (string, error) {
	program := opts.Program
	if program == "" {
		program = "projmarks"
	}
	actions := opts.Actions
	if actions == nil {
		actions = DefaultActions
	}

	var aliasFmt string
	var sb strings.Builder
	sb.WriteString("# projmarks shell integration\n")

	switch opts.Shell {
	case ShellBash, ShellZsh, "":
		fmt.Fprintf(&sb, `__projmarks_jump() {
  local target
  target="$(%s open --print -- "$1")" || return
  if [ -d "$target" ]; then
    cd "$target" || return
  else
    "${VISUAL:-${EDITOR:-vi}}" "$target"
  fi
}
`, program)
		aliasFmt = "alias %s='%s'\n"
	case ShellFish:
		fmt.Fprintf(&sb, `function __projmarks_jump
    set -l target (%s open --print -- $argv[1]); or return
    if test -d "$target"
        cd "$target"
    else if set -q VISUAL
        $VISUAL "$target"
    else if set -q EDITOR
        $EDITOR "$target"
    else
        vi "$target"
    end
end
`, program)
		aliasFmt = "alias %s '%s'\n"
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported shell %q", opts.Shell)
	}

	lhss := make([]string, 0, len(b.aliases))
	for lhs := range b.aliases {
		lhss = append(lhss, lhs)
	}
	sort.Strings(lhss)
	for _, lhs := range lhss {
		fmt.Fprintf(&sb, aliasFmt, lhs, "__projmarks_jump "+b.aliases[lhs])
	}

	if opts.ActionPrefix != "" {
		for _, a := range actions {
			name := opts.ActionPrefix + a.Suffix
			if !aliasNamePattern.MatchString(name) {
				continue
			}
			fmt.Fprintf(&sb, aliasFmt, name, program+" "+a.Command)
		}
	}

	return sb.String(), nil
}
