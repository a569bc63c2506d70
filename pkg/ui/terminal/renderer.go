// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/projmarks/pkg/errors"
	"github.com/arthur-debert/projmarks/pkg/style"
	"github.com/arthur-debert/projmarks/pkg/ui/display"
)

// Renderer writes styled output for interactive terminals
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a display result with styling
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Listing:
		return r.write(r.listing(v))
	case *display.Overview:
		if len(v.Projects) == 0 {
			return r.write(style.MutedStyle.Render("No marks yet"))
		}
		parts := make([]string, 0, len(v.Projects))
		for i := range v.Projects {
			parts = append(parts, r.listing(&v.Projects[i]))
		}
		return r.write(strings.Join(parts, "\n\n"))
	case *display.KeySet:
		keys := make([]string, 0, len(v.Keys))
		for _, k := range v.Keys {
			keys = append(keys, style.KeyStyle.Render(k))
		}
		return r.write(strings.Join(keys, " "))
	case *display.ActionResult:
		return r.write(indicator(v.Status) + " " + style.Render(v.Message))
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) listing(l *display.Listing) string {
	var sb strings.Builder
	sb.WriteString(style.ProjectStyle.Render(l.Project))
	if l.IsEmpty() {
		sb.WriteString("\n" + style.Indent(style.MutedStyle.Render("no marks"), 1))
		return sb.String()
	}

	w := l.KeyWidth()
	for _, m := range l.Marks {
		path := style.PathStyle.Render(m.Path)
		if m.IsDir {
			path = style.DirStyle.Render(m.Path)
		}
		key := style.PadRight(style.KeyStyle.Render(m.Key), w)
		sb.WriteString("\n" + style.Indent(key+"  "+path, 1))
	}
	return sb.String()
}

func indicator(status string) string {
	switch status {
	case "applied", "removed", "committed":
		return style.SuccessIndicator
	case "already-set":
		return style.InfoIndicator
	case "declined", "conflict-pending":
		return style.WarningIndicator
	default:
		return style.InfoIndicator
	}
}

func (r *Renderer) write(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

// RenderError renders an error, naming the offending line for bulk edits
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if line, ok := errors.LineNumber(err); ok {
		msg = fmt.Sprintf("line %d: %v", line, errors.GetErrorDetails(err)[errors.DetailReason])
	}
	return r.write(fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, style.ErrorStyle.Render(msg)))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(style.Render(msg))
}
