package main

import (
	"context"
	"os"

	"github.com/goliatone/go-numfmt/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
