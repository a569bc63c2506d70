// Package text provides plain text output without styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/projmarks/pkg/style"
	"github.com/arthur-debert/projmarks/pkg/ui/display"
)

// Renderer writes unstyled output, suitable for pipes and scripts
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a display result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Listing:
		return r.renderListing(v)
	case *display.Overview:
		for i := range v.Projects {
			if err := r.renderListing(&v.Projects[i]); err != nil {
				return err
			}
		}
		return nil
	case *display.KeySet:
		for _, k := range v.Keys {
			if _, err := fmt.Fprintln(r.output, k); err != nil {
				return err
			}
		}
		return nil
	case *display.ActionResult:
		return r.RenderMessage(v.Message)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderListing(l *display.Listing) error {
	if _, err := fmt.Fprintf(r.output, "%s\n", l.Project); err != nil {
		return err
	}
	w := l.KeyWidth()
	for _, m := range l.Marks {
		if _, err := fmt.Fprintf(r.output, "  %-*s  %s\n", w, m.Key, m.Path); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders a plain error message
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %s\n", err.Error())
	return werr
}

// RenderMessage renders msg with its markup removed
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Strip(msg))
	return err
}
