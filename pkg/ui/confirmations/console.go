// Package confirmations asks the user to approve mark overwrites.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/projmarks/pkg/paths"
	"github.com/arthur-debert/projmarks/pkg/style"
	"github.com/arthur-debert/projmarks/pkg/types"
)

// ConsoleDialog prompts on out and reads answers from in.
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog over the given streams
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm shows the current and proposed targets and asks [y/N]. An empty
// answer takes the request's default; end of input declines.
func (d *ConsoleDialog) Confirm(req types.ConfirmationRequest) (bool, error) {
	current := paths.Relativize(req.Current, req.Project)
	proposed := paths.Relativize(req.Proposed, req.Project)

	fmt.Fprintln(d.out, style.Render(fmt.Sprintf("Mark [key]%s[/key] in [project]%s[/project]", req.Key, req.Project)))
	fmt.Fprintf(d.out, "  now: %s\n", style.Render("[path]"+current+"[/path]"))
	fmt.Fprintf(d.out, "  new: %s\n", style.Render("[path]"+proposed+"[/path]"))

	marker := "[y/N]"
	if req.Default {
		marker = "[Y/n]"
	}
	fmt.Fprintf(d.out, "Overwrite? %s: ", marker)

	answer, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}
	if err == io.EOF && answer == "" {
		fmt.Fprintln(d.out)
		return false, nil
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return req.Default, nil
	}
	return answer == "y" || answer == "yes", nil
}

// AutoConfirm answers every request with a fixed decision.
type AutoConfirm bool

// Confirm returns the fixed decision.
func (a AutoConfirm) Confirm(types.ConfirmationRequest) (bool, error) {
	return bool(a), nil
}

// Ask prompts for a free form value, such as a missing mark key.
func (d *ConsoleDialog) Ask(prompt string) (string, error) {
	fmt.Fprint(d.out, prompt)
	answer, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
