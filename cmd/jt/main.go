package main

import (
	"os"

	"github.com/arthur-debert/jt/pkg/adapters"
	"github.com/arthur-debert/jt/pkg/cli"
)

func main() {
	cli.Run(os.Args[1:], adapters.NewProductionContext())
}
