package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/projmarks/cmd/projmarks"
	"github.com/arthur-debert/projmarks/pkg/style"
	"github.com/arthur-debert/projmarks/pkg/ui"
)

func main() {
	rootCmd := projmarks.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
		if rerr != nil || renderer.RenderError(err) != nil {
			fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
