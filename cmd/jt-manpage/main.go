package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/jt/internal/version"
	"github.com/arthur-debert/jt/pkg/adapters"
	"github.com/arthur-debert/jt/pkg/cli"
)

func main() {
	rootCmd := cli.NewRootCmd(adapters.NewProductionContext())

	header := &doc.GenManHeader{
		Title:   "JT",
		Section: "1",
		Source:  "jt " + version.Version,
		Manual:  "jt manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
