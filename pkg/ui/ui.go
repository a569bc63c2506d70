// Package ui renders command results as rich terminal output, plain text
// or JSON.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/projmarks/pkg/ui/json"
	"github.com/arthur-debert/projmarks/pkg/ui/terminal"
	"github.com/arthur-debert/projmarks/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders one of the display result types
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message, which may carry style markup
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto is resolved with
// DetectFormat against output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
