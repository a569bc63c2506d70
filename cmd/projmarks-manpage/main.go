package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/projmarks/cmd/projmarks"
	"github.com/arthur-debert/projmarks/internal/version"
)

func main() {
	rootCmd := projmarks.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PROJMARKS",
		Section: "1",
		Source:  "projmarks " + version.Version,
		Manual:  "projmarks manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
